// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/models"
)

// contractDataRepository is the SQL-backed implementation of
// [ContractDataRepository] over the "contract_data" table.
type contractDataRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewContractDataRepository(db *DB, logger *logger.Logger) ContractDataRepository {
	logger.Debug().Msg("creating contract data repository")
	return &contractDataRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contractDataRepository) GetData(ctx context.Context, key string) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContractDataQuery(r.db.dialect, key)
	if err != nil {
		log.Err(err).Str("func", "*contractDataRepository.GetData").Msg("error building query")
		return models.DataEntry{}, err
	}

	var (
		entry     models.DataEntry
		updatedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&entry.Key,
		&entry.Value,
		&entry.UpdatedBy,
		&entry.TxHash,
		&entry.Version,
		&updatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.DataEntry{}, ErrDataNotFound
	case err != nil:
		log.Err(err).Str("func", "*contractDataRepository.GetData").Str("key", key).Msg("error: scanning error")
		return models.DataEntry{}, r.db.classify(fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	entry.UpdatedAt = &updatedAt
	return entry, nil
}

func (r *contractDataRepository) SaveData(ctx context.Context, entry models.DataEntry, previousVersion int64) error {
	log := logger.FromContext(ctx)

	updatedAt := time.Now().UTC()
	if entry.UpdatedAt != nil {
		updatedAt = *entry.UpdatedAt
	}

	query, args, err := buildUpsertContractDataQuery(r.db.dialect, entry, updatedAt, previousVersion)
	if err != nil {
		log.Err(err).Str("func", "*contractDataRepository.SaveData").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contractDataRepository.SaveData").Str("key", entry.Key).Msg("error executing upsert")
		return r.db.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	// the conflict clause skipped the update: the slot moved on
	if affected == 0 {
		log.Warn().
			Str("key", entry.Key).
			Int64("expected_version", previousVersion).
			Msg("contract data version conflict")
		return ErrVersionConflict
	}

	return nil
}

func (r *contractDataRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return r.db.classify(err)
	}
	return nil
}
