package wallet

import (
	"context"
	"crypto/ed25519"
	"strings"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=../mock/wallet_provider_mock.go -package=mock

// Provider is the wallet surface used by the marketplace client.
type Provider interface {
	// RequestAccounts returns the available addresses, selected one first.
	RequestAccounts(ctx context.Context) ([]string, error)
	// OnAccountsChanged installs the single account-change listener,
	// replacing any previous one. Passing nil removes it.
	OnAccountsChanged(listener func(accounts []string))
	// Sign signs msg with the key of address.
	Sign(ctx context.Context, address string, msg []byte) ([]byte, error)
	// PublicKey returns the public key of address.
	PublicKey(address string) (ed25519.PublicKey, error)
	// ConfirmTransaction asks the user to approve a write to key. A refusal
	// yields [ErrUserRejected].
	ConfirmTransaction(ctx context.Context, address, key string) error
}

// Approver decides whether a transaction may be signed. It may block until
// the user answers or ctx is done.
type Approver func(ctx context.Context, address, key string) (bool, error)

// KeystoreProvider serves a [Keystore] as a [Provider].
type KeystoreProvider struct {
	mu       sync.Mutex
	keystore *Keystore
	selected int
	listener func([]string)
	approver Approver
}

// NewKeystoreProvider selects the first account and approves every
// transaction until SetApprover is called.
func NewKeystoreProvider(keystore *Keystore) *KeystoreProvider {
	return &KeystoreProvider{keystore: keystore}
}

// SetApprover replaces the transaction approver. nil approves everything.
func (p *KeystoreProvider) SetApprover(approver Approver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.approver = approver
}

func (p *KeystoreProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	accounts := p.orderedLocked()
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}

func (p *KeystoreProvider) OnAccountsChanged(listener func(accounts []string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listener = listener
}

func (p *KeystoreProvider) Sign(ctx context.Context, address string, msg []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	account, err := p.find(address)
	if err != nil {
		return nil, err
	}
	return account.Sign(msg), nil
}

func (p *KeystoreProvider) PublicKey(address string) (ed25519.PublicKey, error) {
	account, err := p.find(address)
	if err != nil {
		return nil, err
	}
	return account.PublicKey, nil
}

func (p *KeystoreProvider) ConfirmTransaction(ctx context.Context, address, key string) error {
	if _, err := p.find(address); err != nil {
		return err
	}

	p.mu.Lock()
	approver := p.approver
	p.mu.Unlock()

	if approver == nil {
		return nil
	}

	ok, err := approver(ctx, address, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserRejected
	}
	return nil
}

// SwitchAccount selects the next account and notifies the listener.
// It is a no-op for wallets with fewer than two accounts.
func (p *KeystoreProvider) SwitchAccount() {
	p.mu.Lock()
	n := len(p.keystore.accounts)
	if n < 2 {
		p.mu.Unlock()
		return
	}
	p.selected = (p.selected + 1) % n
	accounts := p.orderedLocked()
	listener := p.listener
	p.mu.Unlock()

	if listener != nil {
		listener(accounts)
	}
}

// CreateAccount adds an account to the keystore, selects it and notifies
// the listener.
func (p *KeystoreProvider) CreateAccount() (string, error) {
	p.mu.Lock()
	account, err := p.keystore.CreateAccount()
	if err != nil {
		p.mu.Unlock()
		return "", err
	}
	p.selected = len(p.keystore.accounts) - 1
	accounts := p.orderedLocked()
	listener := p.listener
	p.mu.Unlock()

	if listener != nil {
		listener(accounts)
	}
	return account.Address, nil
}

func (p *KeystoreProvider) orderedLocked() []string {
	all := p.keystore.accounts
	out := make([]string, 0, len(all))
	for i := range all {
		out = append(out, all[(p.selected+i)%len(all)].Address)
	}
	return out
}

func (p *KeystoreProvider) find(address string) (*Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, account := range p.keystore.accounts {
		if strings.EqualFold(account.Address, address) {
			return account, nil
		}
	}
	return nil, ErrUnknownAccount
}
