package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultGRPCAddress    = "localhost:3200"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "artisan-market"
	defaultTokenDuration  = time.Hour
	defaultChallengeTTL   = 5 * time.Minute
	defaultProbeInterval  = 15 * time.Second
	defaultMetricsPeriod  = time.Minute
	defaultVersion        = "0.1.0"
	defaultAdapterTimeout = 10 * time.Second
)

// GetServerConfig loads the structured configuration, fills unset node
// settings with defaults and validates the result.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cfg.applyServerDefaults()
	if err := cfg.validateServer(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *StructuredConfig) applyServerDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.GRPCAddress == "" {
		cfg.Server.GRPCAddress = defaultGRPCAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ChallengeTTL == 0 {
		cfg.App.ChallengeTTL = defaultChallengeTTL
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Workers.ProbeInterval == 0 {
		cfg.Workers.ProbeInterval = defaultProbeInterval
	}
	if cfg.Workers.MetricsInterval == 0 {
		cfg.Workers.MetricsInterval = defaultMetricsPeriod
	}
}
