package service

import "errors"

// Contract node errors.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrContractUnavailable = errors.New("contract is not available")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrChallengeNotFound = errors.New("challenge expired or not found")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidAddress    = errors.New("invalid wallet address")

	ErrValidationInvalidKey    = errors.New("invalid contract key")
	ErrValidationValueTooLarge = errors.New("contract value too large")
)

// Client errors.
var (
	ErrWalletNotConnected    = errors.New("wallet is not connected")
	ErrRequiredFieldsMissing = errors.New("required fields are missing")
	ErrConnectWallet         = errors.New("failed to connect wallet")
)
