package transport

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/exception"
)

// DecodeSearchIDRequest reads the search id from the path.
func DecodeSearchIDRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.SearchIDRequest{ID: chi.URLParam(r, "id")}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// DecodeHotelRequest reads the search id and the event name from the path.
func DecodeHotelRequest(_ context.Context, r *http.Request) (interface{}, error) {
	eventName, err := url.PathUnescape(chi.URLParam(r, "event"))
	if err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid event name",
			Cause:      err,
		}
	}

	req := &dto.HotelRequest{
		SearchID:  chi.URLParam(r, "id"),
		EventName: eventName,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}
