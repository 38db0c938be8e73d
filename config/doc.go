// Package config loads the service configuration.
//
// Values are resolved in this order: environment variables, an optional
// config file (yaml, json or toml), then defaults. A .env file in the working
// directory is loaded into the environment first when present.
//
//	cfg, err := config.LoadConfig("")            // ./config.yaml if it exists
//	cfg, err := config.LoadConfig("prod.yaml")   // explicit file, must exist
//
// Recognized environment variables: APP_NAME, ENVIRONMENT, HOST, PORT,
// DATABASE_URL, TEST_DATABASE_URL, LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT,
// LOG_OUTPUT_FILE, OTEL_EXPORTER_OTLP_ENDPOINT and SENTRY_DSN.
package config
