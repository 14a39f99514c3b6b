package logger

import (
	"io"

	"smartrx-client/internal/app/config"
	"smartrx-client/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the console logger the CLI reports results with.
func NewLogrusLogger(internalConfig *config.InternalConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	switch internalConfig.App.Env {
	case constvars.EnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:       true,
			DisableLevelTruncation: true,
		})
	}
	return logger
}
