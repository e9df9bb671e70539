package endpoints

import (
	"context"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock type for the SearchService type
type MockSearchService struct {
	mock.Mock
}

// ListEvents provides a mock function with given fields: ctx
func (_m *MockSearchService) ListEvents(ctx context.Context) dto.EventsResponse {
	ret := _m.Called(ctx)

	return ret.Get(0).(dto.EventsResponse)
}

// StartSearch provides a mock function with given fields: ctx, req
func (_m *MockSearchService) StartSearch(ctx context.Context, req dto.SearchRequest) (dto.SearchSnapshot, error) {
	ret := _m.Called(ctx, req)

	return ret.Get(0).(dto.SearchSnapshot), ret.Error(1)
}

// GetSearch provides a mock function with given fields: ctx, id
func (_m *MockSearchService) GetSearch(ctx context.Context, id string) (dto.SearchSnapshot, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(dto.SearchSnapshot), ret.Error(1)
}

// GetHotel provides a mock function with given fields: ctx, req
func (_m *MockSearchService) GetHotel(ctx context.Context, req dto.HotelRequest) (dto.HotelOption, error) {
	ret := _m.Called(ctx, req)

	return ret.Get(0).(dto.HotelOption), ret.Error(1)
}

// CancelSearch provides a mock function with given fields: ctx, id
func (_m *MockSearchService) CancelSearch(ctx context.Context, id string) (dto.SearchSnapshot, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(dto.SearchSnapshot), ret.Error(1)
}

// NewMockSearchService creates a new instance of MockSearchService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSearchService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSearchService {
	m := &MockSearchService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
