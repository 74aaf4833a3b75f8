// Package log is a thin structured-logging facade over logrus. The rest of
// the application logs through the package-level helpers; tests and the CLI
// reconfigure the shared logger with Configure.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/wcmckee/SortPictures/internal/errors"
)

var logger = newLogger()

// Field is a single structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a field for use with With/LogWithFields
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures the underlying logger
type Option func(*logrus.Logger)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches to JSON-formatted output
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	return l
}

// Configure replaces the shared logger's settings
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// SetDebug toggles debug-level logging
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Entry is a log entry carrying structured fields
type Entry struct {
	entry *logrus.Entry
}

// With adds further fields to the entry
func (e Entry) With(fields ...Field) Entry {
	return Entry{entry: e.entry.WithFields(toLogrus(fields))}
}

// Debug logs at debug level
func (e Entry) Debug(msg string) { e.entry.Debug(msg) }

// Info logs at info level
func (e Entry) Info(msg string) { e.entry.Info(msg) }

// Warn logs at warning level
func (e Entry) Warn(msg string) { e.entry.Warn(msg) }

// Error logs at error level
func (e Entry) Error(msg string) { e.entry.Error(msg) }

// Debugf logs a formatted message at debug level
func (e Entry) Debugf(format string, args ...interface{}) { e.entry.Debugf(format, args...) }

// Infof logs a formatted message at info level
func (e Entry) Infof(format string, args ...interface{}) { e.entry.Infof(format, args...) }

// Warnf logs a formatted message at warning level
func (e Entry) Warnf(format string, args ...interface{}) { e.entry.Warnf(format, args...) }

// Errorf logs a formatted message at error level
func (e Entry) Errorf(format string, args ...interface{}) { e.entry.Errorf(format, args...) }

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lf
}

// With starts an entry with the given fields
func With(fields ...Field) Entry {
	return Entry{entry: logrus.NewEntry(logger).WithFields(toLogrus(fields))}
}

// LogWithFields is an alias for With
func LogWithFields(fields ...Field) Entry {
	return With(fields...)
}

// LogWithError starts an entry annotated with an error and, where the error
// carries them, its kind and associated path or option.
func LogWithError(err error) Entry {
	e := With(F("error", err))
	if err == nil {
		return e
	}
	if kind := errors.KindOf(err); kind != errors.Unknown {
		e = e.With(F("error_kind", int(kind)))
	}
	var actionErr *errors.ActionError
	if errors.As(err, &actionErr) && actionErr.Path() != "" {
		e = e.With(F("path", actionErr.Path()))
	}
	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		e = e.With(F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Option() != "" {
		e = e.With(F("option", configErr.Option()))
	}
	return e
}

// Debug logs a message at debug level
func Debug(msg string) { logger.Debug(msg) }

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// Info logs a message at info level
func Info(msg string) { logger.Info(msg) }

// Infof logs a formatted message at info level
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warn logs a message at warning level
func Warn(msg string) { logger.Warn(msg) }

// Warnf logs a formatted message at warning level
func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

// Error logs a message at error level
func Error(msg string) { logger.Error(msg) }

// Errorf logs a formatted message at error level
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
