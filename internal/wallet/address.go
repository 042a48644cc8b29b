package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/utils"
)

const addressLen = 20

// DeriveAddress returns the account address of a public key.
func DeriveAddress(pub ed25519.PublicKey) string {
	digest := utils.Keccak256(pub)
	return "0x" + hex.EncodeToString(digest[len(digest)-addressLen:])
}

// IsAddress reports whether s is a 0x-prefixed 20-byte hex string.
// Letter case is ignored.
func IsAddress(s string) bool {
	rest, ok := strings.CutPrefix(s, "0x")
	if !ok || len(rest) != addressLen*2 {
		return false
	}
	_, err := hex.DecodeString(rest)
	return err == nil
}

// VerifySignature checks that sig is a valid signature of msg by pub and
// that pub belongs to address.
func VerifySignature(address string, pub ed25519.PublicKey, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	if !strings.EqualFold(DeriveAddress(pub), address) {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}
