package store

import (
	"context"

	"github.com/MKhiriev/artisan-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContractDataRepository persists the opaque key/value slots of the
// contract. Values are never interpreted.
type ContractDataRepository interface {
	// GetData returns the slot stored under key or [ErrDataNotFound].
	GetData(ctx context.Context, key string) (models.DataEntry, error)

	// SaveData inserts or replaces the slot entry.Key. The write only
	// succeeds while the stored version still equals previousVersion
	// (0 for a new key); otherwise [ErrVersionConflict] is returned.
	SaveData(ctx context.Context, entry models.DataEntry, previousVersion int64) error

	// Ping reports whether the backing database answers.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
