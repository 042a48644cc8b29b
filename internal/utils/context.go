// Package utils provides general-purpose helpers shared by the contract
// node and the marketplace client: typed context keys, keccak hashing,
// HTTP response writing, the resty client wrapper, JWT handling and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AddressCtxKey is the key under which the auth middleware stores the
// wallet address of an authenticated request.
//
//	ctx := context.WithValue(ctx, utils.AddressCtxKey, "0xabc...")
var AddressCtxKey = contextKey("walletAddress")

// GetAddressFromContext retrieves the wallet address placed in ctx by the
// auth middleware. ok is false when the value is missing, empty or of an
// unexpected type.
func GetAddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(AddressCtxKey).(string)
	if !ok || address == "" {
		return "", false
	}
	return address, true
}
