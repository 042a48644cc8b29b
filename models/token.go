package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token issued to a connected wallet.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim holds the wallet address the token was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Address is the wallet address extracted from the "sub" claim.
	Address string `json:"-"`
}

// GetAddress returns the wallet address stored in the "sub" claim.
func (t *Token) GetAddress() (string, error) {
	address, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if address == "" {
		return "", errors.New("empty subject")
	}

	return address, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
