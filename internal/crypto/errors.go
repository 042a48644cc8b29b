package crypto

import "errors"

var (
	// ErrNotFHEBlob is returned when a value lacks the "FHE-" tag.
	ErrNotFHEBlob = errors.New("value is not an FHE blob")
	// ErrWrongPassphrase is returned by [KeySealer.Open] when authentication
	// of the sealed key fails.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keystore")
	// ErrSealedKeyTooShort is returned when the sealed payload cannot hold a nonce.
	ErrSealedKeyTooShort = errors.New("ciphertext too short")
)
