package service

import (
	"net/http"

	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/exception"
)

var ErrSearchNotFound = exception.ApplicationError{
	Message:    "search not found",
	StatusCode: http.StatusNotFound,
}

var ErrHotelNotFound = exception.ApplicationError{
	Message:    "no hotel found for the event",
	StatusCode: http.StatusNotFound,
}

var ErrSearchNotRunning = exception.ApplicationError{
	Message:    "search already finished",
	StatusCode: http.StatusConflict,
}

var ErrTooManyEvents = exception.ApplicationError{
	Message:    "too many events selected",
	StatusCode: http.StatusBadRequest,
}
