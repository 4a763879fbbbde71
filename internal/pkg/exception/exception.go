package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// BadRequest builds a client error carrying the upstream message verbatim.
func BadRequest(message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// Internal wraps an unexpected failure as a server error.
func Internal(message string, cause error) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}
