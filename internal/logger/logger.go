// Package logger is the process-wide structured logger. Until Init is called
// every message is discarded, so library code and tests stay silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	base    = newLogger(io.Discard, logrus.InfoLevel)
	logFile *os.File
	mu      sync.Mutex
)

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
	return l
}

// Init directs log output to the file at logPath (appending) at the given
// level ("debug", "info", "warn", "error"). An empty level means info.
func Init(logPath, level string) error {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	base.SetOutput(f)
	base.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output to w, replacing any log file.
func SetOutput(w io.Writer, level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base.SetOutput(w)
	base.SetLevel(level)
}

// Close closes the log file and discards further output.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base.SetOutput(io.Discard)
}

// L returns an entry for structured logging with fields.
func L() *logrus.Entry {
	return logrus.NewEntry(base)
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	base.Infof(format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	base.Debugf(format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	base.Warnf(format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	base.Errorf(format, v...)
}
