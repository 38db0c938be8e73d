package data

import (
	"context"
	"testing"

	"github.com/ncobase/blogpost/config"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.MongoDB
		want string
	}{
		{"from uri", &config.MongoDB{URI: "mongodb://localhost/blog-app"}, "blog-app"},
		{"from uri with options", &config.MongoDB{URI: "mongodb://u:p@db:27017/posts?authSource=admin"}, "posts"},
		{"default", &config.MongoDB{URI: "mongodb://localhost:27017"}, DefaultDatabase},
		{"explicit wins", &config.MongoDB{URI: "mongodb://localhost/a", Database: "b"}, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatabaseName(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseNameInvalidURI(t *testing.T) {
	_, err := DatabaseName(&config.MongoDB{URI: "postgres://localhost/x"})
	assert.Error(t, err)
}

func TestNewRejectsEmptyURI(t *testing.T) {
	_, err := New(context.Background(), &config.MongoDB{}, logger.StdLogger())
	assert.Error(t, err)

	_, err = New(context.Background(), nil, logger.StdLogger())
	assert.Error(t, err)
}
