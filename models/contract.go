package models

import "time"

// RegistryIndexKey is the contract slot holding the JSON array of artisan ids.
const RegistryIndexKey = "artisan_keys"

// DataEntry is a single key/value slot of contract storage as persisted by
// the contract node.
type DataEntry struct {
	// Key is the storage key (e.g. "artisan_keys").
	Key string `json:"key"`

	// Value is the opaque byte blob. It is base64 encoded on the wire.
	Value []byte `json:"value"`

	// UpdatedBy is the wallet address of the last writer.
	UpdatedBy string `json:"updated_by,omitempty"`

	// TxHash is the hash of the transaction that produced Value.
	TxHash string `json:"tx_hash,omitempty"`

	// Version is incremented on every write to Key, starting at 1.
	Version int64 `json:"version,omitempty"`

	// UpdatedAt is the time of the last write.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Transaction is the receipt returned for an accepted setData call.
type Transaction struct {
	Hash      string    `json:"hash"`
	Key       string    `json:"key"`
	From      string    `json:"from"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// SetDataRequest is the body of PUT /api/contract/data/{key}.
type SetDataRequest struct {
	Value []byte `json:"value"`
}

// DataResponse is the body of GET /api/contract/data/{key}. An unset key is
// reported with an empty Value.
type DataResponse struct {
	Key   string `json:"key"`
	Value []byte `json:"value"`
}

// AvailabilityResponse is the body of GET /api/contract/available.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}
