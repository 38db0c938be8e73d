package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ncobase/blogpost/config"
	"github.com/ncobase/blogpost/ctxutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestInfoWritesFieldsAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)
	l.SetVersion("1.0.0")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.Info(ctx, "blog post created", "id", "abc", "count", 2)

	line := decodeLine(t, &buf)
	assert.Equal(t, "blog post created", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "abc", line["id"])
	assert.Equal(t, float64(2), line["count"])
	assert.Equal(t, "trace-1", line[ctxutil.TraceIDKey])
	assert.Equal(t, "1.0.0", line[VersionKey])
}

func TestErrorFieldIsStringified(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)

	l.Error(context.Background(), "failed", "error", errors.New("boom"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "error", line["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)

	l.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "shown")
	assert.NotZero(t, buf.Len())
}

func TestFieldsFromPairs(t *testing.T) {
	fields := fieldsFromPairs([]any{"a", 1, 2, "b", "dangling"})

	assert.Equal(t, 1, fields["a"])
	assert.Equal(t, "b", fields["2"])
	assert.Equal(t, "dangling", fields["!BADKEY"])
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := &Logger{Logger: logrus.New()}

	cleanup, err := l.Init(&config.Logger{
		Level:      int(logrus.InfoLevel),
		Format:     "json",
		Output:     "file",
		OutputFile: path,
		MaxSize:    1,
	})
	require.NoError(t, err)

	l.Info(context.Background(), "to file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}

func TestInitRejectsBadConfig(t *testing.T) {
	l := &Logger{Logger: logrus.New()}

	_, err := l.Init(&config.Logger{Level: 4, Output: "kafka"})
	assert.Error(t, err)

	_, err = l.Init(&config.Logger{Level: 4, Output: "file"})
	assert.Error(t, err)

	_, err = l.Init(&config.Logger{Level: 99})
	assert.Error(t, err)
}
