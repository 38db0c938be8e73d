// Package logger wraps logrus with context-aware, key/value logging methods.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ncobase/blogpost/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Key constants
const (
	VersionKey = "version"
)

// ErrorKey is the field key logrus uses for errors (logrus.ErrorKey is a variable, not a constant).
var ErrorKey = logrus.ErrorKey

// Logger represents logger instance
type Logger struct {
	*logrus.Logger
	version string
	rotator *lumberjack.Logger
}

var (
	// stdLogger is the global logger
	stdLogger *Logger
	// once ensures that the logger is initialized only once
	once sync.Once
)

// StdLogger returns the process logger.
func StdLogger() *Logger {
	once.Do(func() {
		stdLogger = &Logger{
			Logger: logrus.New(),
		}
		stdLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return stdLogger
}

// New configures the process logger and returns a cleanup function that
// flushes and closes any file output.
func New(c *config.Logger) (func(), error) {
	return StdLogger().Init(c)
}

// NewWithWriter builds a standalone logger writing JSON to w.
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// Init initializes the logger with the given configuration
func (l *Logger) Init(c *config.Logger) (func(), error) {
	if c == nil {
		return func() {}, nil
	}

	level := logrus.Level(c.Level)
	if level > logrus.TraceLevel {
		return nil, fmt.Errorf("invalid log level %d", c.Level)
	}
	l.SetLevel(level)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch c.Output {
	case "", "stdout":
		l.SetOutput(os.Stdout)
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		l.rotator = &lumberjack.Logger{
			Filename:   c.OutputFile,
			MaxSize:    c.MaxSize,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxBackups,
			LocalTime:  true,
			Compress:   true,
		}
		l.SetOutput(io.MultiWriter(os.Stdout, l.rotator))
	default:
		return nil, fmt.Errorf("unknown logger output %q", c.Output)
	}

	return func() {
		if l.rotator != nil {
			_ = l.rotator.Close()
		}
	}, nil
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := getTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}

	if l.version != "" {
		fields[VersionKey] = l.version
	}

	return l.WithFields(fields)
}

// fieldsFromPairs turns alternating key/value arguments into fields.
// A trailing key without a value is kept under "!BADKEY".
func fieldsFromPairs(kv []any) logrus.Fields {
	fields := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 >= len(kv) {
			fields["!BADKEY"] = kv[i]
			break
		}
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	return fields
}

func (l *Logger) log(ctx context.Context, level logrus.Level, msg string, kv ...any) {
	if !l.IsLevelEnabled(level) {
		return
	}
	l.entryFromContext(ctx).WithFields(fieldsFromPairs(kv)).Log(level, msg)
}

// Debug logs a debug message with key/value pairs
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.DebugLevel, msg, kv...)
}

// Info logs an info message with key/value pairs
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.InfoLevel, msg, kv...)
}

// Warn logs a warning message with key/value pairs
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.WarnLevel, msg, kv...)
}

// Error logs an error message with key/value pairs
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.ErrorLevel, msg, kv...)
}
