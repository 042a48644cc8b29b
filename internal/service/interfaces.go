package service

import (
	"context"

	"github.com/MKhiriev/artisan-market/models"
)

// ContractService is the contract node's view of key/value storage. Values
// are opaque blobs; nothing here interprets them.
type ContractService interface {
	// IsAvailable reports whether storage answers.
	IsAvailable(ctx context.Context) bool

	// GetData returns the value stored under key, or an empty slice for an
	// unset key.
	GetData(ctx context.Context, key string) ([]byte, error)

	// SetData stores value under key on behalf of the wallet address from
	// and returns the transaction receipt.
	SetData(ctx context.Context, from, key string, value []byte) (models.Transaction, error)
}

// WalletAuthService authenticates wallets with signed one-time challenges
// and issues bearer tokens for contract writes.
type WalletAuthService interface {
	IssueChallenge(ctx context.Context, address string) (models.Challenge, error)
	Connect(ctx context.Context, req models.ConnectRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContractServiceWrapper defines middleware composition for ContractService.
// Implementations wrap an existing ContractService to add behavior such as
// validating or metrics.
type ContractServiceWrapper interface {
	Wrap(ContractService) ContractService // returns a decorated ContractService applying additional behavior
}
