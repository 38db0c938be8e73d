package config

import (
	"time"

	"github.com/spf13/viper"
)

// Observes observes config struct
type Observes struct {
	Tracer *Tracer `json:"tracer" yaml:"tracer"`
	Sentry *Sentry `json:"sentry" yaml:"sentry"`
}

// Tracer config struct for OpenTelemetry
type Tracer struct {
	Endpoint      string        `json:"endpoint" yaml:"endpoint"` // OTLP gRPC endpoint, empty disables export
	SamplingRate  float64       `json:"sampling_rate" yaml:"sampling_rate"`
	BatchTimeout  time.Duration `json:"batch_timeout" yaml:"batch_timeout"`
	ExportTimeout time.Duration `json:"export_timeout" yaml:"export_timeout"`
}

// Sentry config struct
type Sentry struct {
	DSN        string  `json:"dsn" yaml:"dsn"`
	SampleRate float64 `json:"sample_rate" yaml:"sample_rate"`
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Tracer: &Tracer{
			Endpoint:      v.GetString("observes.tracer.endpoint"),
			SamplingRate:  getFloat64OrDefault(v, "observes.tracer.sampling_rate", 1.0),
			BatchTimeout:  getDurationOrDefault(v, "observes.tracer.batch_timeout", 5*time.Second),
			ExportTimeout: getDurationOrDefault(v, "observes.tracer.export_timeout", 30*time.Second),
		},
		Sentry: &Sentry{
			DSN:        v.GetString("observes.sentry.dsn"),
			SampleRate: getFloat64OrDefault(v, "observes.sentry.sample_rate", 1.0),
		},
	}
}
