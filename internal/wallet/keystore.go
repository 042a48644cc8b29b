// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/artisan-market/internal/crypto"
)

const keystoreVersion = 1

type keystoreFile struct {
	Version  int               `json:"version"`
	Accounts []keystoreAccount `json:"accounts"`
}

type keystoreAccount struct {
	Address   string            `json:"address"`
	PublicKey []byte            `json:"public_key"`
	Sealed    *crypto.SealedKey `json:"sealed"`
}

// Account is an unlocked key pair.
type Account struct {
	Address    string
	PublicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
}

// Sign signs msg with the account's private key.
func (a *Account) Sign(msg []byte) []byte {
	return ed25519.Sign(a.privateKey, msg)
}

// NewAccount generates a fresh key pair.
func NewAccount() (*Account, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &Account{Address: DeriveAddress(pub), PublicKey: pub, privateKey: priv}, nil
}

// Keystore is the on-disk set of sealed accounts.
type Keystore struct {
	path       string
	passphrase string
	sealer     crypto.KeySealer
	accounts   []*Account
}

// OpenKeystore unlocks the keystore at path. When the file does not exist
// a keystore with one new account is created and written.
func OpenKeystore(path, passphrase string, sealer crypto.KeySealer) (*Keystore, error) {
	ks := &Keystore{path: path, passphrase: passphrase, sealer: sealer}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if _, err := ks.CreateAccount(); err != nil {
			return nil, err
		}
		return ks, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}

	var file keystoreFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptKeystore, err)
	}

	for _, stored := range file.Accounts {
		if stored.Sealed == nil {
			return nil, fmt.Errorf("%w: account %s has no key", ErrCorruptKeystore, stored.Address)
		}
		seed, err := sealer.Open(stored.Sealed, passphrase)
		if err != nil {
			return nil, fmt.Errorf("unlock account %s: %w", stored.Address, err)
		}
		if len(seed) != ed25519.SeedSize {
			return nil, fmt.Errorf("%w: bad seed length for %s", ErrCorruptKeystore, stored.Address)
		}
		priv := ed25519.NewKeyFromSeed(seed)
		pub := priv.Public().(ed25519.PublicKey)
		ks.accounts = append(ks.accounts, &Account{Address: DeriveAddress(pub), PublicKey: pub, privateKey: priv})
	}

	return ks, nil
}

// Accounts returns the unlocked accounts in keystore order.
func (ks *Keystore) Accounts() []*Account {
	return append([]*Account(nil), ks.accounts...)
}

// CreateAccount adds a new account and persists the keystore.
func (ks *Keystore) CreateAccount() (*Account, error) {
	account, err := NewAccount()
	if err != nil {
		return nil, err
	}

	ks.accounts = append(ks.accounts, account)
	if err := ks.save(); err != nil {
		ks.accounts = ks.accounts[:len(ks.accounts)-1]
		return nil, err
	}

	return account, nil
}

func (ks *Keystore) save() error {
	file := keystoreFile{Version: keystoreVersion}
	for _, account := range ks.accounts {
		sealed, err := ks.sealer.Seal(account.privateKey.Seed(), ks.passphrase)
		if err != nil {
			return fmt.Errorf("seal account %s: %w", account.Address, err)
		}
		file.Accounts = append(file.Accounts, keystoreAccount{
			Address:   account.Address,
			PublicKey: account.PublicKey,
			Sealed:    sealed,
		})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keystore: %w", err)
	}

	if dir := filepath.Dir(ks.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create keystore dir: %w", err)
		}
	}

	tmp := ks.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write keystore: %w", err)
	}
	return os.Rename(tmp, ks.path)
}
