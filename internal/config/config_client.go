package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AccountID pins the local account identifier; empty means generate.
	AccountID string
	// DeviceLabel is the label sent with client registration.
	DeviceLabel string
	// DeviceSecret seals local crypto-session material at rest.
	DeviceSecret string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend base URL used by the HTTP adapter.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SessionsDir is the crypto-session store directory.
	SessionsDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ActivationInitialDelay is the first activation retry delay.
	ActivationInitialDelay time.Duration
	// ActivationMaxDelay caps the activation retry backoff.
	ActivationMaxDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for the worker delays, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AccountID:    cfg.App.AccountID,
			DeviceLabel:  cfg.App.DeviceLabel,
			DeviceSecret: cfg.App.DeviceSecret,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			SessionsDir: cfg.Storage.Sessions.Dir,
		},
		Workers: ClientWorkers{
			ActivationInitialDelay: cfg.Workers.ActivationInitialDelay,
			ActivationMaxDelay:     cfg.Workers.ActivationMaxDelay,
		},
	}

	if clientCfg.Workers.ActivationInitialDelay == 0 {
		clientCfg.Workers.ActivationInitialDelay = 2 * time.Second
	}
	if clientCfg.Workers.ActivationMaxDelay == 0 {
		clientCfg.Workers.ActivationMaxDelay = 15 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
