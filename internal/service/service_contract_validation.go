package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/artisan-market/internal/validators"
	"github.com/MKhiriev/artisan-market/models"
)

type ContractValidationService struct {
	inner     ContractService
	validator validators.Validator
}

func NewContractValidationService() ContractServiceWrapper {
	return &ContractValidationService{
		validator: validators.NewContractValidator(),
	}
}

func (v *ContractValidationService) IsAvailable(ctx context.Context) bool {
	return v.inner.IsAvailable(ctx)
}

func (v *ContractValidationService) GetData(ctx context.Context, key string) ([]byte, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return nil, fmt.Errorf("error during contract key validation: %w", mapValidationError(err))
	}

	return v.inner.GetData(ctx, key)
}

func (v *ContractValidationService) SetData(ctx context.Context, from, key string, value []byte) (models.Transaction, error) {
	entry := models.DataEntry{Key: key, Value: value, UpdatedBy: from}
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.Transaction{}, fmt.Errorf("error during contract data validation before saving: %w", mapValidationError(err))
	}

	return v.inner.SetData(ctx, from, key, value)
}

func (v *ContractValidationService) Wrap(wrapped ContractService) ContractService {
	v.inner = wrapped
	return v
}

// mapValidationError keeps the validator error in the chain and adds the
// service sentinel the handlers map to a status.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyKey),
		errors.Is(err, validators.ErrKeyTooLong),
		errors.Is(err, validators.ErrInvalidKeyChars):
		return fmt.Errorf("%w: %w", ErrValidationInvalidKey, err)
	case errors.Is(err, validators.ErrValueTooLarge):
		return fmt.Errorf("%w: %w", ErrValidationValueTooLarge, err)
	case errors.Is(err, validators.ErrInvalidAddress):
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
