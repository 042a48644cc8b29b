// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants shared by every binary: no duration may be
// negative. Binary-specific requirements live in validateServer and
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	durations := []struct {
		value int64
	}{
		{int64(cfg.App.TokenDuration)},
		{int64(cfg.App.ChallengeTTL)},
		{int64(cfg.Server.RequestTimeout)},
		{int64(cfg.Adapter.RequestTimeout)},
		{int64(cfg.Workers.ProbeInterval)},
		{int64(cfg.Workers.MetricsInterval)},
	}
	for _, d := range durations {
		if d.value < 0 {
			return ErrNegativeDuration
		}
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Wallet.KeystorePath == "" || cfg.Wallet.Passphrase == "" {
		return ErrInvalidWalletConfigs
	}

	return nil
}
