package remote

import (
	"net/http"

	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/exception"
)

var ErrUnexpectedStatus = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "remote service internal error or temporary unavailable",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "remote service rate limit exceeded",
}
