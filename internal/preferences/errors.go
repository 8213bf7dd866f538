package preferences

import (
	"errors"
	"net/http"
)

// ErrInvalid indicates an update would leave preferences out of range.
var ErrInvalid = errors.New("invalid preferences")

// MapHTTPStatus maps preference errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
