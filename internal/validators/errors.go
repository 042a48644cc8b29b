package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey        = errors.New("contract key is required")
	ErrKeyTooLong      = errors.New("contract key is too long")
	ErrInvalidKeyChars = errors.New("contract key contains invalid characters")
	ErrValueTooLarge   = errors.New("contract value too large")
	ErrInvalidAddress  = errors.New("invalid wallet address")
	ErrEmptyNonce      = errors.New("challenge nonce is required")
	ErrInvalidPubKey   = errors.New("invalid public key")
	ErrEmptySignature  = errors.New("signature is required")

	ErrEmptyName       = errors.New("name is required")
	ErrEmptyStyle      = errors.New("style is required")
	ErrInvalidCategory = errors.New("invalid category")
)
