package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the configuration implementation.
type Config struct {
	AppName     string
	Environment string
	Host        string
	Port        int
	Logger      *Logger
	Data        *Data
	Observes    *Observes
	Viper       *viper.Viper
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"app_name":                 "APP_NAME",
	"environment":              "ENVIRONMENT",
	"server.host":              "HOST",
	"server.port":              "PORT",
	"data.mongodb.uri":         "DATABASE_URL",
	"data.mongodb.test_uri":    "TEST_DATABASE_URL",
	"logger.level":             "LOG_LEVEL",
	"logger.format":            "LOG_FORMAT",
	"logger.output":            "LOG_OUTPUT",
	"logger.output_file":       "LOG_OUTPUT_FILE",
	"observes.tracer.endpoint": "OTEL_EXPORTER_OTLP_ENDPOINT",
	"observes.sentry.dsn":      "SENTRY_DSN",
}

// LoadConfig loads the configuration. An empty path looks for an optional
// config file in the working directory; a non-empty path must exist.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:     v.GetString("app_name"),
		Environment: v.GetString("environment"),
		Host:        v.GetString("server.host"),
		Port:        v.GetInt("server.port"),
		Logger:      getLoggerConfig(v),
		Data:        getDataConfig(v),
		Observes:    getObservesConfig(v),
		Viper:       v,
	}
}

// IsProd reports whether the service runs in release mode.
func (c *Config) IsProd() bool {
	return c.Environment == "release" || c.Environment == "production"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "blogpost")
	v.SetDefault("environment", "debug")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("data.mongodb.uri", "mongodb://localhost/blog-app")
	v.SetDefault("data.mongodb.test_uri", "mongodb://localhost/test-blog-app")
	v.SetDefault("data.mongodb.collection", "blogPosts")
	v.SetDefault("data.mongodb.connect_timeout", "10s")
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("observes.tracer.sampling_rate", 1.0)
}

// loadDotEnv loads a .env file without overriding variables already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
