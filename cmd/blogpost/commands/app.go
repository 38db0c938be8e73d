package commands

import (
	"context"
	"fmt"

	"github.com/ncobase/blogpost/config"
	"github.com/ncobase/blogpost/data"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/logging/observes"
	"github.com/ncobase/blogpost/version"
)

// app holds the process-wide dependencies shared by the commands.
type app struct {
	config *config.Config
	logger *logger.Logger
	data   *data.Data
}

// newApp loads configuration and acquires the logger, tracing, error
// reporting and the datastore, in that order. The returned cleanup releases
// them in reverse order.
func newApp(ctx context.Context, configFile string, useTestDB bool) (*app, func(), error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := logger.StdLogger()
	info := version.GetVersionInfo()
	log.SetVersion(info.Version)

	cleanups := []func(){cleanupLogger}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if t := cfg.Observes.Tracer; t != nil {
		shutdown, err := observes.NewTracer(ctx, &observes.TracerOption{
			URL:           t.Endpoint,
			Name:          cfg.AppName,
			Version:       info.Version,
			Environment:   cfg.Environment,
			SamplingRate:  t.SamplingRate,
			BatchTimeout:  t.BatchTimeout,
			ExportTimeout: t.ExportTimeout,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
		}
		cleanups = append(cleanups, func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn(context.Background(), "failed to shutdown tracer", "error", err)
			}
		})
	}

	if s := cfg.Observes.Sentry; s != nil && s.DSN != "" {
		hub, err := observes.NewSentry(&observes.SentryOptions{
			Dsn:         s.DSN,
			Name:        cfg.AppName,
			Release:     info.Version,
			Environment: cfg.Environment,
			SampleRate:  s.SampleRate,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create sentry client: %w", err)
		}
		hook := log.AddSentryHook(hub)
		cleanups = append(cleanups, func() { hook.Flush(flushTimeout) })
	}

	mongoCfg := cfg.Data.MongoDB
	if useTestDB {
		mongoCfg = mongoCfg.ForTest()
	}
	d, err := data.New(ctx, mongoCfg, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create data layer: %w", err)
	}
	cleanups = append(cleanups, func() {
		if err := d.Close(context.Background()); err != nil {
			log.Error(context.Background(), "failed to close data layer", "error", err)
		}
	})

	return &app{config: cfg, logger: log, data: d}, cleanup, nil
}
