// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the contract node.
//
// [ContractReader] is the read-only contract handle, [ContractSigner] the
// signing handle obtained after a wallet connects. The HTTP implementation
// ([NewHTTPContractAdapter]) talks to the node REST API with resty and may
// check availability through the gRPC health protocol instead.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/artisan-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contract_adapter_mock.go -package=mock

// ContractReader is a read-only handle to key/value contract storage.
type ContractReader interface {
	// IsAvailable reports whether the contract can serve requests.
	IsAvailable(ctx context.Context) (bool, error)

	// GetData returns the blob stored under key. An unset key yields an
	// empty slice and no error.
	GetData(ctx context.Context, key string) ([]byte, error)
}

// ContractSigner is a signing handle bound to one wallet session.
type ContractSigner interface {
	ContractReader

	// SetData writes value under key as a wallet-authorised transaction.
	SetData(ctx context.Context, key string, value []byte) (models.Transaction, error)
}

// TxConfirmer asks the wallet owner to approve a write before it is sent.
type TxConfirmer interface {
	ConfirmTransaction(ctx context.Context, address, key string) error
}

// ContractAdapter is the full client transport: the read handle plus the
// wallet login exchange that yields a [ContractSigner].
type ContractAdapter interface {
	ContractReader

	// Version returns the node version string.
	Version(ctx context.Context) (string, error)

	// RequestChallenge asks the node for a login challenge for address.
	RequestChallenge(ctx context.Context, address string) (models.Challenge, error)

	// ConnectWallet submits a signed challenge and returns the bearer token.
	ConnectWallet(ctx context.Context, req models.ConnectRequest) (string, error)

	// NewSigner returns a signing handle that authenticates with token and
	// asks confirmer before every write.
	NewSigner(address, token string, confirmer TxConfirmer) ContractSigner

	// Close releases transport resources.
	Close() error
}
