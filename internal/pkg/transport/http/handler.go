package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/exception"
)

// DecodeFunc turns an HTTP request into an endpoint request object.
type DecodeFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeFunc writes an endpoint response to the client.
type EncodeFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// DecodeRequest decodes the JSON body into T and runs its Bind validation.
// T's pointer type must implement render.Binder.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	request := new(T)

	binder, ok := any(request).(render.Binder)
	if !ok {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusInternalServerError,
			Message:    "request type does not implement binder",
		}
	}

	if err := render.Bind(r, binder); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	return request, nil
}

// MakeHandlerFunc chains decode, endpoint and encode into one handler, with
// all errors funneled through the shared error encoder.
func MakeHandlerFunc(ep endpoint.Endpoint, decode DecodeFunc, encode EncodeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, err := decode(ctx, r)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		if err := encode(ctx, w, response); err != nil {
			ErrorResponse(ctx, err, w)
		}
	}
}
