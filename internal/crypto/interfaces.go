package crypto

import "github.com/MKhiriev/artisan-market/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FHEEncoder produces and reads the "FHE-" tagged blobs stored in artisan
// records. The tag marks a value as confidential for display purposes; the
// payload itself is only base64 encoded and is NOT encrypted.
type FHEEncoder interface {
	// EncryptJSON marshals v to JSON and returns "FHE-" + base64(json).
	EncryptJSON(v any) (models.CipheredBlob, error)

	// EncryptRaw returns "FHE-" + base64(s) without any JSON quoting.
	EncryptRaw(s string) models.CipheredBlob

	// Decrypt strips the tag and returns the decoded bytes.
	Decrypt(blob models.CipheredBlob) ([]byte, error)

	// DecryptJSON decodes a blob produced by EncryptJSON into target.
	DecryptJSON(blob models.CipheredBlob, target any) error
}

// KeySealer protects wallet private keys at rest with a passphrase.
type KeySealer interface {
	// Seal derives a key from passphrase and a fresh salt with Argon2id and
	// encrypts secret with AES-256-GCM.
	Seal(secret []byte, passphrase string) (*SealedKey, error)

	// Open reverses Seal. A wrong passphrase yields [ErrWrongPassphrase].
	Open(sealed *SealedKey, passphrase string) ([]byte, error)
}
