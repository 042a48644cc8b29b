package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NonceGenerator issues wallet challenge nonces: random (v4) UUIDs without
// dashes, so the signed challenge text stays a single token.
type NonceGenerator struct{}

func NewNonceGenerator() *NonceGenerator {
	return &NonceGenerator{}
}

func (NonceGenerator) Generate() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
