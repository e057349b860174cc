// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Settings is the subset of store.Config the logger needs.
type Settings interface {
	LogLevel() string
	LogFile() string
}

// New returns a logger writing to the configured log file, or to fallback
// when none is set. The returned closer releases the file.
func New(s Settings, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	level := logrus.InfoLevel
	if s != nil && strings.TrimSpace(s.LogLevel()) != "" {
		parsed, err := logrus.ParseLevel(s.LogLevel())
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	if s != nil && s.LogFile() != "" {
		f, err := os.OpenFile(s.LogFile(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", s.LogFile(), err)
		}
		logger.SetOutput(f)
		return logger, f, nil
	}

	if fallback == nil {
		fallback = io.Discard
	}
	logger.SetOutput(fallback)
	return logger, nopCloser{}, nil
}

// Discard is a logger that drops everything, for tests and the TUI.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
