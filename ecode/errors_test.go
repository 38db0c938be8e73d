package ecode

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "Internal server error", Text(ServerErr))
	assert.Equal(t, "Not found", Text(NotFound))
	assert.Equal(t, "unknown error code -1", Text(-1))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(RequestErr))
	assert.Equal(t, http.StatusServiceUnavailable, ToHTTPStatus(ServiceUnavailable))
	assert.Equal(t, http.StatusRequestEntityTooLarge, ToHTTPStatus(PayloadTooLarge))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(-42))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Missing `title` in request body", MissingInBody("title"))
	assert.Equal(t,
		"Request path id (a) and request body id (b) must match",
		IDsMustMatch("a", "b"))
	assert.Equal(t, "id invalid", FieldIsInvalid("id"))
	assert.Equal(t, "required", FieldIsRequired())
	assert.Equal(t, "Malformed request body", MalformedBody())
}
