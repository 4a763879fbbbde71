package service

import (
	"net/http"

	"github.com/vedantidabholkar/SafarAI/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.ApplicationError{
	Message:    "No flights found",
	StatusCode: http.StatusNotFound,
}

var ErrNoHotelsFound = exception.ApplicationError{
	Message:    "No hotels found",
	StatusCode: http.StatusNotFound,
}
