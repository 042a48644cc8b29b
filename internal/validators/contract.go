package validators

import (
	"context"
	"crypto/ed25519"

	"github.com/MKhiriev/artisan-market/internal/wallet"
	"github.com/MKhiriev/artisan-market/models"
)

// Field names accepted by [ContractValidator].
const (
	FieldKey       = "key"
	FieldValue     = "value"
	FieldUpdatedBy = "updated_by"
	FieldAddress   = "address"
	FieldNonce     = "nonce"
	FieldPublicKey = "public_key"
	FieldSignature = "signature"
)

const (
	// MaxKeyLength bounds contract keys; "artisan_" plus a generated id
	// needs 29 characters.
	MaxKeyLength = 128

	// MaxValueSize bounds a single stored blob.
	MaxValueSize = 64 << 10

	// MaxIndexSize bounds the registry index, which grows by one quoted id
	// per listing: about 690,000 ids.
	MaxIndexSize = 16 << 20
)

// ContractValidator checks contract writes and wallet login requests:
// models.DataEntry, models.ChallengeRequest and models.ConnectRequest.
type ContractValidator struct {
	maxValueSize int
	maxIndexSize int
}

func NewContractValidator() *ContractValidator {
	return &ContractValidator{maxValueSize: MaxValueSize, maxIndexSize: MaxIndexSize}
}

// NewContractValidatorWithLimits overrides the size limits of records and
// of the registry index.
func NewContractValidatorWithLimits(maxValueSize, maxIndexSize int) *ContractValidator {
	return &ContractValidator{maxValueSize: maxValueSize, maxIndexSize: maxIndexSize}
}

func (v *ContractValidator) valueLimit(key string) int {
	if key == models.RegistryIndexKey {
		return v.maxIndexSize
	}
	return v.maxValueSize
}

func (v *ContractValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.DataEntry:
		return v.validateDataEntry(value, fields...)
	case *models.DataEntry:
		return v.validateDataEntry(*value, fields...)

	case models.ChallengeRequest:
		return v.validateChallengeRequest(value, fields...)
	case *models.ChallengeRequest:
		return v.validateChallengeRequest(*value, fields...)

	case models.ConnectRequest:
		return v.validateConnectRequest(value, fields...)
	case *models.ConnectRequest:
		return v.validateConnectRequest(*value, fields...)

	case string:
		// a bare string is a key
		return ValidateKey(value)

	default:
		return ErrUnsupportedType
	}
}

// ValidateKey accepts 1..MaxKeyLength characters from [A-Za-z0-9_-].
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
		default:
			return ErrInvalidKeyChars
		}
	}
	return nil
}

func (v *ContractValidator) validateDataEntry(entry models.DataEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue, FieldUpdatedBy}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := ValidateKey(entry.Key); err != nil {
				return err
			}
		case FieldValue:
			if len(entry.Value) > v.valueLimit(entry.Key) {
				return ErrValueTooLarge
			}
		case FieldUpdatedBy:
			if !wallet.IsAddress(entry.UpdatedBy) {
				return ErrInvalidAddress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContractValidator) validateChallengeRequest(req models.ChallengeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if !wallet.IsAddress(req.Address) {
				return ErrInvalidAddress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContractValidator) validateConnectRequest(req models.ConnectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldNonce, FieldPublicKey, FieldSignature}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if !wallet.IsAddress(req.Address) {
				return ErrInvalidAddress
			}
		case FieldNonce:
			if req.Nonce == "" {
				return ErrEmptyNonce
			}
		case FieldPublicKey:
			if len(req.PublicKey) != ed25519.PublicKeySize {
				return ErrInvalidPubKey
			}
		case FieldSignature:
			if len(req.Signature) == 0 {
				return ErrEmptySignature
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
