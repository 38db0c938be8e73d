package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/ctxutil"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceGeneratesID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(Trace())
	r.GET("/", func(c *gin.Context) {
		seen = ctxutil.GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestTraceReusesIncomingID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(Trace())
	r.GET("/", func(c *gin.Context) {
		seen = ctxutil.GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestSpanPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Span())
	r.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logrus.InfoLevel)

	r := gin.New()
	r.Use(Trace(), Logger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "/ping", line["path"])
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), line[ctxutil.TraceIDKey])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logrus.InfoLevel)

	r := gin.New()
	r.Use(Recovery(log))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}
