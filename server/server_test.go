package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/config"
	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/handler"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/middleware"
	"github.com/ncobase/blogpost/service"
	"github.com/ncobase/blogpost/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyRepo struct{}

func (emptyRepo) List(context.Context, int64) ([]*structs.BlogPost, error) { return nil, nil }
func (emptyRepo) FindByID(context.Context, string) (*structs.BlogPost, error) {
	return nil, repository.ErrNotFound
}
func (emptyRepo) Create(_ context.Context, p *structs.BlogPost) (*structs.BlogPost, error) {
	return p, nil
}
func (emptyRepo) CreateMany(context.Context, []*structs.BlogPost) error { return nil }
func (emptyRepo) Update(context.Context, string, *structs.UpdateBlogPost) error { return nil }
func (emptyRepo) Delete(context.Context, string) error { return nil }
func (emptyRepo) Drop(context.Context) error { return nil }
func (emptyRepo) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.StdLogger()
	cfg := &config.Config{Environment: gin.TestMode, Host: "127.0.0.1", Port: 0}
	h := handler.NewHandler(service.NewService(emptyRepo{}, emptyRepo{}, log), log)

	s, err := NewServer(cfg, h, log)
	require.NoError(t, err)
	return s
}

func TestNewServerRequiresDependencies(t *testing.T) {
	_, err := NewServer(nil, nil, logger.StdLogger())
	assert.Error(t, err)
	_, err = NewServer(&config.Config{}, nil, nil)
	assert.Error(t, err)
}

func TestServeAndShutdown(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/blog-posts")
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	_ = res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get(middleware.RequestIDHeader))

	var list structs.ListBlogPosts
	require.NoError(t, json.Unmarshal(body, &list))
	assert.NotNil(t, list.BlogPosts)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/nope")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGinMode(t *testing.T) {
	tests := map[string]string{
		"release":     gin.ReleaseMode,
		"production":  gin.ReleaseMode,
		"test":        gin.TestMode,
		"debug":       gin.DebugMode,
		"development": gin.DebugMode,
		"":            gin.DebugMode,
	}
	for env, want := range tests {
		assert.Equal(t, want, ginMode(&config.Config{Environment: env}), env)
	}
}

func TestNewEngineUnknownEnvironment(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	log := logger.StdLogger()
	h := handler.NewHandler(service.NewService(emptyRepo{}, emptyRepo{}, log), log)

	assert.NotPanics(t, func() {
		NewEngine(&config.Config{Environment: "development"}, h, log)
	})
	assert.Equal(t, gin.DebugMode, gin.Mode())
}
