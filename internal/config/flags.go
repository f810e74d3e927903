package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url backend base URL
//	-d database DSN (SQLite file path)
//	-sessions-dir crypto session store directory
//	-account-id local account identifier
//	-device-label device label used for client registration
//	-device-secret secret sealing local crypto sessions
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-activation-initial-delay first activation retry delay (e.g., "2s")
//	-activation-max-delay activation retry delay cap (e.g., "15s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var sessionsDir string
	var accountID string
	var deviceLabel string
	var deviceSecret string
	var requestTimeout time.Duration
	var activationInitialDelay time.Duration
	var activationMaxDelay time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "base-url", "", "Backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sessionsDir, "sessions-dir", "", "Crypto session store directory")
	flag.StringVar(&accountID, "account-id", "", "Local account identifier")
	flag.StringVar(&deviceLabel, "device-label", "", "Device label for client registration")
	flag.StringVar(&deviceSecret, "device-secret", "", "Device secret sealing crypto sessions")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&activationInitialDelay, "activation-initial-delay", 0, "First activation retry delay (e.g., 2s)")
	flag.DurationVar(&activationMaxDelay, "activation-max-delay", 0, "Activation retry delay cap (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccountID:    accountID,
			DeviceLabel:  deviceLabel,
			DeviceSecret: deviceSecret,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Sessions: Sessions{
				Dir: sessionsDir,
			},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ActivationInitialDelay: activationInitialDelay,
			ActivationMaxDelay:     activationMaxDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
