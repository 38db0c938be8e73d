package observes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNewTracerWithoutEndpoint(t *testing.T) {
	shutdown, err := NewTracer(context.Background(), &TracerOption{Name: "blogpost-test", SamplingRate: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := otel.Tracer(TracerName).Start(context.Background(), "op")
	defer span.End()

	assert.True(t, span.SpanContext().HasTraceID())
}

func TestNewTracerNilOption(t *testing.T) {
	_, err := NewTracer(context.Background(), nil)
	assert.Error(t, err)
}

func TestNewSentryDisabled(t *testing.T) {
	hub, err := NewSentry(&SentryOptions{})
	require.NoError(t, err)
	assert.Nil(t, hub)

	hub, err = NewSentry(nil)
	require.NoError(t, err)
	assert.Nil(t, hub)
}

func TestLayerString(t *testing.T) {
	assert.Equal(t, "Repository", LayerRepo.String())
	assert.Equal(t, "Handler", LayerHandler.String())
}
