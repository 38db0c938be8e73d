package resp

import (
	"net/http"

	"github.com/ncobase/blogpost/ecode"
)

// BadRequest indicates a bad request.
func BadRequest(message string, data ...any) *Exception {
	return newResponse(http.StatusBadRequest, ecode.RequestErr, message, data...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newResponse(http.StatusNotFound, ecode.NotFound, message, data...)
}

// PayloadTooLarge indicates a request body over the size limit.
func PayloadTooLarge(message string, data ...any) *Exception {
	return newResponse(http.StatusRequestEntityTooLarge, ecode.PayloadTooLarge, message, data...)
}

// InternalServer indicates a server error. The message defaults to the generic text.
func InternalServer(message string, data ...any) *Exception {
	return newResponse(http.StatusInternalServerError, ecode.ServerErr, message, data...)
}

// ServiceUnavailable indicates a dependency is down.
func ServiceUnavailable(message string, data ...any) *Exception {
	return newResponse(http.StatusServiceUnavailable, ecode.ServiceUnavailable, message, data...)
}
