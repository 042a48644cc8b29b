package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing node storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings on the node.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWalletConfigs indicates a missing keystore path or passphrase.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrNegativeDuration is returned when any configured duration is below zero.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
