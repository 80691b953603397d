package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher { return WithCode(http.StatusBadRequest) }
func Forbidden() ErrorEnricher  { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher   { return WithCode(http.StatusNotFound) }

// Conflict marks duplicate-creation errors: the id or natural key
// already exists in the registry.
func Conflict() ErrorEnricher { return WithCode(http.StatusConflict) }

// BadGateway marks remote-call failures: the document service rejected
// the call or could not be reached.
func BadGateway() ErrorEnricher { return WithCode(http.StatusBadGateway) }

// IsNotFound reports whether err carries the 404 code.
func IsNotFound(err error) bool {
	return Code(err) == http.StatusNotFound
}

// IsConflict reports whether err carries the 409 code.
func IsConflict(err error) bool {
	return Code(err) == http.StatusConflict
}
