// internal/infra/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// New builds the application logger from configuration. The returned closer
// releases the optional log file and is never nil.
func New(cfg *config.AppConfig) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	var closer io.Closer = nopCloser{}
	log.SetOutput(os.Stdout)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, f))
		closer = f
	}

	// Set Log Level
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(level)
	}

	// Set Log Formatter
	if env := strings.ToLower(cfg.Environment); env == "production" || env == "staging" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			// colors would end up in the log file as escape codes
			ForceColors: cfg.LogFile == "",
		})
	}

	log.Debugf("Log level set to: %s", log.GetLevel().String())
	log.Debugf("Log format set for environment: %s", cfg.Environment)
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Component returns an entry tagged with the component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
