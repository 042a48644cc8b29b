// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// SealedKey is the at-rest form of a wallet private key.
// Ciphertext is nonce ‖ AES-GCM(secret).
type SealedKey struct {
	Salt       []byte `json:"salt"`
	Ciphertext []byte `json:"ciphertext"`
	Time       uint32 `json:"argon_time"`
	Memory     uint32 `json:"argon_memory"`
	Threads    uint8  `json:"argon_threads"`
}

type keySealer struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeySealer constructs a [KeySealer] with the Argon2id parameters
// recommended by OWASP: 1 iteration, 64 MiB, 4 threads, 256-bit key.
func NewKeySealer() KeySealer {
	return &keySealer{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// NewKeySealerWithParams builds a [KeySealer] with explicit Argon2id cost
// parameters.
func NewKeySealerWithParams(time, memory uint32, threads uint8) KeySealer {
	return &keySealer{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32,
	}
}

func (k *keySealer) Seal(secret []byte, passphrase string) (*SealedKey, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	kek := argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return &SealedKey{
		Salt:       salt,
		Ciphertext: gcm.Seal(nonce, nonce, secret, nil),
		Time:       k.argonTime,
		Memory:     k.argonMemory,
		Threads:    k.argonThreads,
	}, nil
}

// Open derives the key with the parameters recorded in sealed, so keystores
// written with other settings stay readable.
func (k *keySealer) Open(sealed *SealedKey, passphrase string) ([]byte, error) {
	kek := argon2.IDKey([]byte(passphrase), sealed.Salt, sealed.Time, sealed.Memory, sealed.Threads, k.argonKeyLen)
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed.Ciphertext) < nonceSize {
		return nil, ErrSealedKeyTooShort
	}

	nonce, ciphertext := sealed.Ciphertext[:nonceSize], sealed.Ciphertext[nonceSize:]
	secret, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	return secret, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
