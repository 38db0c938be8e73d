package observes

import (
	"github.com/getsentry/sentry-go"
)

// SentryOptions holds the Sentry client settings.
type SentryOptions struct {
	Dsn         string
	Name        string
	Release     string
	Environment string
	SampleRate  float64
}

// NewSentry initializes the Sentry client. It returns a nil hub when no DSN
// is configured so callers can skip reporting.
func NewSentry(opt *SentryOptions) (*sentry.Hub, error) {
	if opt == nil || opt.Dsn == "" {
		return nil, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		SampleRate:       opt.SampleRate,
		ServerName:       opt.Name,
		Release:          opt.Release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return nil, err
	}

	return sentry.CurrentHub(), nil
}
