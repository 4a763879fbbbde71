package serpapi

import (
	"net/http"

	"github.com/vedantidabholkar/SafarAI/internal/pkg/exception"
)

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "search provider rate limit exceeded",
}
