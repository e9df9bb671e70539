package trip

import (
	"net/http"

	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/exception"
)

var ErrLocationNotFound = exception.ApplicationError{
	Message:    "could not find a location for the zip code",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrNoNearbyAirports = exception.ApplicationError{
	Message:    "no airports found near your location",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrSearchCancelled = exception.ApplicationError{
	Message:    "search cancelled",
	StatusCode: http.StatusConflict,
}

var ErrNoEvents = exception.ApplicationError{
	Message:    "at least one event must be selected",
	StatusCode: http.StatusBadRequest,
}

var ErrDuplicateEvent = exception.ApplicationError{
	Message:    "events must not be selected twice",
	StatusCode: http.StatusBadRequest,
}

var ErrAlreadySet = exception.ApplicationError{
	Message:    "trip field already set",
	StatusCode: http.StatusConflict,
}

var ErrEventNotSelected = exception.ApplicationError{
	Message:    "event is not part of this search",
	StatusCode: http.StatusNotFound,
}

var ErrSnapshotNotFound = exception.ApplicationError{
	Message:    "search snapshot not found",
	StatusCode: http.StatusNotFound,
}
