package client

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable is returned when the request never produced a response.
	ErrUnavailable = errors.New("server unavailable")

	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// APIError is a non-2xx response. Message is the backend's "detail" field
// for JSON bodies and the raw body text otherwise.
type APIError struct {
	StatusCode int
	Message    string

	// Response is the original response. Its body has already been read.
	Response *http.Response
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets errors.Is match ErrUnauthorized for 401/403 and ErrNotFound for 404.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
