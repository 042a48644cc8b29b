package service

import (
	"context"

	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRegistryService reads and extends the artisan registry kept on the
// contract.
type ClientRegistryService interface {
	// LoadAll reconstructs every listed artisan in index order. It never
	// fails: an unavailable contract yields an empty list, and records that
	// cannot be fetched or decoded are skipped and logged.
	LoadAll(ctx context.Context) []models.Artisan

	// AddArtisan encodes input, writes the record, then appends its id to
	// the index. The status tracker reflects progress; the caller is
	// expected to refresh the list on success.
	AddArtisan(ctx context.Context, input models.ArtisanInput) (models.Artisan, error)
}

// WalletSession exposes the connected account and its signing handle.
// Signer returns nil while no wallet is connected.
type WalletSession interface {
	Account() string
	Signer() adapter.ContractSigner
}

// ClientWalletService connects the local wallet to the contract node.
type ClientWalletService interface {
	WalletSession

	// Connect requests accounts, proves control of the first one with a
	// signed challenge and stores the resulting signing handle.
	Connect(ctx context.Context) (string, error)

	// Disconnect forgets the account and the signing handle.
	Disconnect()

	// OnAccountChanged registers a callback fired after the wallet reports
	// a new selected account.
	OnAccountChanged(fn func(account string))
}

// IDGenerator produces artisan identifiers.
type IDGenerator interface {
	Generate() string
}
