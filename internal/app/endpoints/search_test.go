//go:build unit

package endpoints

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchEndpoint(t *testing.T) {
	type call struct {
		endpoint  func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error)
		request   interface{}
		setupMock func(m *MockSearchService)
		want      interface{}
		wantErr   error
	}

	run := func(c call) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockSearchService(t)
			c.setupMock(m)

			got, err := c.endpoint(MakeSearchEndpoint(m))(context.Background(), c.request)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("endpoint mismatch (-want +got):\n%s", diff)
			}
		}
	}

	snapshot := dto.SearchSnapshot{ID: "abc", State: "awaiting_user_location"}
	errBoom := errors.New("boom")

	t.Run("list_events", run(call{
		endpoint: func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error) { return e.ListEvents },
		setupMock: func(m *MockSearchService) {
			m.On("ListEvents", mock.Anything).Return(dto.EventsResponse{Events: []dto.Event{{Name: "Evo"}}})
		},
		want: dto.EventsResponse{Events: []dto.Event{{Name: "Evo"}}},
	}))

	t.Run("start_search", run(call{
		endpoint: func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error) { return e.StartSearch },
		request:  &dto.SearchRequest{Events: []string{"Evo"}},
		setupMock: func(m *MockSearchService) {
			m.On("StartSearch", mock.Anything, dto.SearchRequest{Events: []string{"Evo"}}).Return(snapshot, nil)
		},
		want: snapshot,
	}))

	t.Run("start_search_invalid_type", run(call{
		endpoint:  func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error) { return e.StartSearch },
		request:   dto.SearchRequest{},
		setupMock: func(*MockSearchService) {},
		wantErr:   errInvalidType,
	}))

	t.Run("get_search_error", run(call{
		endpoint: func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error) { return e.GetSearch },
		request:  &dto.SearchIDRequest{ID: "abc"},
		setupMock: func(m *MockSearchService) {
			m.On("GetSearch", mock.Anything, "abc").Return(dto.SearchSnapshot{}, errBoom)
		},
		wantErr: errBoom,
	}))

	t.Run("get_hotel", run(call{
		endpoint: func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error) { return e.GetHotel },
		request:  &dto.HotelRequest{SearchID: "abc", EventName: "Evo"},
		setupMock: func(m *MockSearchService) {
			m.On("GetHotel", mock.Anything, dto.HotelRequest{SearchID: "abc", EventName: "Evo"}).
				Return(dto.HotelOption{Name: "Budget Inn"}, nil)
		},
		want: dto.HotelOption{Name: "Budget Inn"},
	}))

	t.Run("cancel_search", run(call{
		endpoint: func(e SearchEndpoint) func(context.Context, interface{}) (interface{}, error) { return e.CancelSearch },
		request:  &dto.SearchIDRequest{ID: "abc"},
		setupMock: func(m *MockSearchService) {
			m.On("CancelSearch", mock.Anything, "abc").Return(snapshot, nil)
		},
		want: snapshot,
	}))
}
