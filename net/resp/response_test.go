package resp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessWritesPayload(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]any{"blogPosts": []string{}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"blogPosts":[]}`, w.Body.String())
}

func TestWithStatusCodeMessageOnly(t *testing.T) {
	w := httptest.NewRecorder()
	WithStatusCode(w, http.StatusAccepted, "queued")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"message":"queued"}`, w.Body.String())
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestFail(t *testing.T) {
	tests := []struct {
		name   string
		exc    *Exception
		status int
		body   string
	}{
		{"nil", nil, http.StatusInternalServerError, `{"message":"Internal server error"}`},
		{"internal", InternalServer(""), http.StatusInternalServerError, `{"message":"Internal server error"}`},
		{"not found", NotFound(""), http.StatusNotFound, `{"message":"Not found"}`},
		{"bad request", BadRequest("ids differ"), http.StatusBadRequest, `{"message":"ids differ"}`},
		{"unavailable", ServiceUnavailable(""), http.StatusServiceUnavailable, `{"message":"Service unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Fail(w, tt.exc)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()
	Text(w, http.StatusBadRequest, "Missing `title` in request body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Missing `title` in request body", w.Body.String())
}

func TestFailPayloadTooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, PayloadTooLarge(""))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"message":"Request entity too large"}`, w.Body.String())
}
