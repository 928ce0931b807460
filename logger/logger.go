// Package logger provides leveled logging for the API with a console backend.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var logger *logging.Logger

// InitLogger initializes the console logging backend with the given level.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger("reviewhub")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level} - %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "reviewhub")

	newLogger.SetBackend(logging.MultiLogger(leveled))
	logger = newLogger
}

// ParseLevel converts a LOG_LEVEL string to a logging level, defaulting to INFO.
func ParseLevel(s string) logging.Level {
	level, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return level
}

func ensure() {
	if logger == nil {
		InitLogger(logging.INFO)
	}
}

func Debug(args ...any) {
	ensure()
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	ensure()
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	ensure()
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	ensure()
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	ensure()
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	ensure()
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	ensure()
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	ensure()
	logger.Errorf(format, args...)
}
