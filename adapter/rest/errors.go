package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoBaseURL is returned when the adapter is used before a base URL
// has been configured. It is reported before any network attempt.
var ErrNoBaseURL = errors.New("rest: base URL not configured")

// ErrNotFound matches (via errors.Is) any RequestError whose status is
// 404, letting callers distinguish a missing resource from other
// remote failures without this adapter retrying or translating either.
var ErrNotFound = errors.New("rest: resource not found")

// RequestError reports a non-2xx response.
type RequestError struct {
	Status int
	Method string
	URL    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("rest: %s %s: %d %s", e.Method, e.URL, e.Status, http.StatusText(e.Status))
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *RequestError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
