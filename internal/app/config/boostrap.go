package config

import (
	"net/http"

	"go.uber.org/zap"
)

type Bootstrap struct {
	HTTPClient     *http.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown() error {
	if b.HTTPClient != nil {
		b.HTTPClient.CloseIdleConnections()
		b.Logger.Debug("Successfully closing idle HTTP connections")
	}

	// Sync on stdout/stderr fails with EINVAL on most terminals.
	_ = b.Logger.Sync()
	return nil
}
