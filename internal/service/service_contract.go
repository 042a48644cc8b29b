// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/store"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/models"
)

// contractService stores opaque blobs and stamps every write with a
// version counter and a keccak-256 transaction hash.
type contractService struct {
	repository store.ContractDataRepository
	now        func() time.Time
	logger     *logger.Logger
}

func NewContractService(repository store.ContractDataRepository, logger *logger.Logger) ContractService {
	return &contractService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *contractService) IsAvailable(ctx context.Context) bool {
	if err := s.repository.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("contract storage ping failed")
		return false
	}
	return true
}

func (s *contractService) GetData(ctx context.Context, key string) ([]byte, error) {
	entry, err := s.repository.GetData(ctx, key)
	switch {
	case errors.Is(err, store.ErrDataNotFound):
		return []byte{}, nil
	case err != nil:
		return nil, s.storageError(err)
	}

	return entry.Value, nil
}

// SetData reads the current version, then writes version+1 guarded by the
// version it read. A concurrent writer turns the second write into
// store.ErrVersionConflict.
func (s *contractService) SetData(ctx context.Context, from, key string, value []byte) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var previousVersion int64
	current, err := s.repository.GetData(ctx, key)
	switch {
	case errors.Is(err, store.ErrDataNotFound):
	case err != nil:
		log.Err(err).Str("key", key).Msg("error reading contract slot before write")
		return models.Transaction{}, s.storageError(err)
	default:
		previousVersion = current.Version
	}

	now := s.now().UTC()
	version := previousVersion + 1
	hash := utils.TransactionHash(from, key, value, version, now.UnixNano())

	entry := models.DataEntry{
		Key:       key,
		Value:     value,
		UpdatedBy: from,
		TxHash:    hash,
		Version:   version,
		UpdatedAt: &now,
	}
	if err = s.repository.SaveData(ctx, entry, previousVersion); err != nil {
		log.Err(err).Str("key", key).Int64("version", version).Msg("error writing contract slot")
		if errors.Is(err, store.ErrVersionConflict) {
			return models.Transaction{}, err
		}
		return models.Transaction{}, s.storageError(err)
	}

	log.Info().
		Str("key", key).
		Str("from", from).
		Str("tx_hash", hash).
		Int64("version", version).
		Int("size", len(value)).
		Msg("contract slot written")

	return models.Transaction{
		Hash:      hash,
		Key:       key,
		From:      from,
		Version:   version,
		Timestamp: now,
	}, nil
}

func (s *contractService) storageError(err error) error {
	if errors.Is(err, store.ErrStorageUnavailable) {
		return fmt.Errorf("%w: %w", ErrContractUnavailable, err)
	}
	return err
}
