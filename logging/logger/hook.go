package logger

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards error entries to Sentry.
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook creates a hook bound to the given hub.
func NewSentryHook(hub *sentry.Hub) *SentryHook {
	return &SentryHook{hub: hub}
}

// Levels implements logrus.Hook.
func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

// Fire implements logrus.Hook.
func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if h.hub == nil || h.hub.Client() == nil {
		return nil
	}

	err, ok := entry.Data[ErrorKey].(error)
	if !ok {
		err = errors.New(entry.Message)
	}

	h.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		for k, v := range entry.Data {
			if k == ErrorKey {
				continue
			}
			scope.SetExtra(k, v)
		}
		if traceID, ok := entry.Data[traceKey].(string); ok {
			scope.SetTag(traceKey, traceID)
		}
		scope.SetExtra("message", entry.Message)
		h.hub.CaptureException(err)
	})
	return nil
}

// Flush waits for buffered events to be sent.
func (h *SentryHook) Flush(timeout time.Duration) bool {
	if h.hub == nil {
		return true
	}
	return h.hub.Flush(timeout)
}

// AddSentryHook attaches Sentry reporting to the logger.
func (l *Logger) AddSentryHook(hub *sentry.Hub) *SentryHook {
	hook := NewSentryHook(hub)
	l.AddHook(hook)
	return hook
}
