package wallet

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, accounts int) *KeystoreProvider {
	t.Helper()
	ks, err := OpenKeystore(filepath.Join(t.TempDir(), "wallet.json"), "pw", testSealer())
	require.NoError(t, err)
	for i := 1; i < accounts; i++ {
		_, err := ks.CreateAccount()
		require.NoError(t, err)
	}
	return NewKeystoreProvider(ks)
}

func TestKeystoreProvider_RequestAccounts(t *testing.T) {
	p := newTestProvider(t, 2)

	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, p.keystore.accounts[0].Address, accounts[0])
}

func TestKeystoreProvider_RequestAccounts_Empty(t *testing.T) {
	p := NewKeystoreProvider(&Keystore{})

	_, err := p.RequestAccounts(context.Background())
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func TestKeystoreProvider_RequestAccounts_CancelledContext(t *testing.T) {
	p := newTestProvider(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.RequestAccounts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeystoreProvider_SignAndPublicKey(t *testing.T) {
	p := newTestProvider(t, 1)
	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)

	msg := []byte("challenge")
	sig, err := p.Sign(context.Background(), accounts[0], msg)
	require.NoError(t, err)
	pub, err := p.PublicKey(accounts[0])
	require.NoError(t, err)

	assert.True(t, VerifySignature(accounts[0], pub, msg, sig))

	_, err = p.Sign(context.Background(), "0xunknown", msg)
	assert.ErrorIs(t, err, ErrUnknownAccount)
	_, err = p.PublicKey("0xunknown")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestKeystoreProvider_SwitchAccountNotifiesSingleListener(t *testing.T) {
	p := newTestProvider(t, 2)
	before, _ := p.RequestAccounts(context.Background())

	var first, second [][]string
	p.OnAccountsChanged(func(a []string) { first = append(first, a) })
	p.OnAccountsChanged(func(a []string) { second = append(second, a) })

	p.SwitchAccount()

	assert.Empty(t, first, "replaced listener must not fire")
	require.Len(t, second, 1)
	assert.Equal(t, []string{before[1], before[0]}, second[0])
}

func TestKeystoreProvider_SwitchAccountSingleIsNoop(t *testing.T) {
	p := newTestProvider(t, 1)
	called := false
	p.OnAccountsChanged(func([]string) { called = true })

	p.SwitchAccount()

	assert.False(t, called)
}

func TestKeystoreProvider_CreateAccountSelectsIt(t *testing.T) {
	p := newTestProvider(t, 1)
	var got []string
	p.OnAccountsChanged(func(a []string) { got = a })

	address, err := p.CreateAccount()
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, address, got[0])
}

func TestKeystoreProvider_ConfirmTransaction(t *testing.T) {
	p := newTestProvider(t, 1)
	accounts, _ := p.RequestAccounts(context.Background())
	address := accounts[0]

	require.NoError(t, p.ConfirmTransaction(context.Background(), address, "artisan_1"), "nil approver approves")

	var mu sync.Mutex
	var seen []string
	p.SetApprover(func(_ context.Context, _, key string) (bool, error) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, key)
		return key != "artisan_keys", nil
	})

	assert.NoError(t, p.ConfirmTransaction(context.Background(), address, "artisan_1"))
	err := p.ConfirmTransaction(context.Background(), address, "artisan_keys")
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.Contains(t, err.Error(), "user rejected transaction")
	assert.Equal(t, []string{"artisan_1", "artisan_keys"}, seen)

	boom := errors.New("prompt closed")
	p.SetApprover(func(context.Context, string, string) (bool, error) { return false, boom })
	assert.ErrorIs(t, p.ConfirmTransaction(context.Background(), address, "k"), boom)

	assert.ErrorIs(t, p.ConfirmTransaction(context.Background(), "0xnope", "k"), ErrUnknownAccount)
}
