package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/artisan-market/models"
)

const contractDataTable = "contract_data"

var contractDataColumns = []string{
	"data_key",
	"data_value",
	"updated_by",
	"tx_hash",
	"version",
	"updated_at",
}

// upsertContractDataSuffix replaces an existing slot only while its version
// still matches the one the writer read.
const upsertContractDataSuffix = `ON CONFLICT (data_key) DO UPDATE SET
		data_value = excluded.data_value,
		updated_by = excluded.updated_by,
		tx_hash = excluded.tx_hash,
		version = excluded.version,
		updated_at = excluded.updated_at
	WHERE contract_data.version = ?`

func buildSelectContractDataQuery(dialect Dialect, key string) (string, []any, error) {
	query, args, err := sq.
		Select(contractDataColumns...).
		From(contractDataTable).
		Where(sq.Eq{"data_key": key}).
		PlaceholderFormat(dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertContractDataQuery(dialect Dialect, entry models.DataEntry, updatedAt time.Time, previousVersion int64) (string, []any, error) {
	query, args, err := sq.
		Insert(contractDataTable).
		Columns(contractDataColumns...).
		Values(entry.Key, entry.Value, entry.UpdatedBy, entry.TxHash, entry.Version, updatedAt).
		Suffix(upsertContractDataSuffix, previousVersion).
		PlaceholderFormat(dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
