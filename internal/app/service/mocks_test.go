package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotCacher is a mock type for the SnapshotCacher type
type MockSnapshotCacher struct {
	mock.Mock
}

// GetSnapshot provides a mock function with given fields: ctx, searchID
func (_m *MockSnapshotCacher) GetSnapshot(ctx context.Context, searchID string) (dto.SearchSnapshot, error) {
	ret := _m.Called(ctx, searchID)

	var r0 dto.SearchSnapshot
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (dto.SearchSnapshot, error)); ok {
		return rf(ctx, searchID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) dto.SearchSnapshot); ok {
		r0 = rf(ctx, searchID)
	} else {
		r0 = ret.Get(0).(dto.SearchSnapshot)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, searchID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetSnapshot provides a mock function with given fields: ctx, snapshot, expiration
func (_m *MockSnapshotCacher) SetSnapshot(ctx context.Context, snapshot dto.SearchSnapshot, expiration time.Duration) error {
	ret := _m.Called(ctx, snapshot, expiration)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, dto.SearchSnapshot, time.Duration) error); ok {
		r0 = rf(ctx, snapshot, expiration)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockSnapshotCacher creates a new instance of MockSnapshotCacher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSnapshotCacher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSnapshotCacher {
	m := &MockSnapshotCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
