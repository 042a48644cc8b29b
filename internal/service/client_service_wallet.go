package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/wallet"
	"github.com/MKhiriev/artisan-market/models"
)

type clientWalletService struct {
	provider wallet.Provider
	adapter  adapter.ContractAdapter
	logger   *logger.Logger

	mu       sync.Mutex
	account  string
	signer   adapter.ContractSigner
	onChange func(string)
}

func NewClientWalletService(provider wallet.Provider, contract adapter.ContractAdapter, log *logger.Logger) ClientWalletService {
	return &clientWalletService{
		provider: provider,
		adapter:  contract,
		logger:   log.WithComponent("wallet"),
	}
}

func (s *clientWalletService) Connect(ctx context.Context) (string, error) {
	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return "", s.connectError(err)
	}

	var account string
	if len(accounts) > 0 {
		account = accounts[0]
	}

	challenge, err := s.adapter.RequestChallenge(ctx, account)
	if err != nil {
		return "", s.connectError(err)
	}

	signature, err := s.provider.Sign(ctx, account, challenge.Message())
	if err != nil {
		return "", s.connectError(err)
	}

	publicKey, err := s.provider.PublicKey(account)
	if err != nil {
		return "", s.connectError(err)
	}

	token, err := s.adapter.ConnectWallet(ctx, models.ConnectRequest{
		Address:   account,
		Nonce:     challenge.Nonce,
		PublicKey: publicKey,
		Signature: signature,
	})
	if err != nil {
		return "", s.connectError(err)
	}

	signer := s.adapter.NewSigner(account, token, s.provider)

	s.mu.Lock()
	s.account = account
	s.signer = signer
	s.mu.Unlock()

	// The listener only moves the displayed account. The token and the
	// signer stay bound to the account that connected.
	s.provider.OnAccountsChanged(s.accountsChanged)

	s.logger.Info().Str("account", account).Msg("wallet connected")
	return account, nil
}

func (s *clientWalletService) Disconnect() {
	s.provider.OnAccountsChanged(nil)

	s.mu.Lock()
	s.account = ""
	s.signer = nil
	s.mu.Unlock()

	s.logger.Info().Msg("wallet disconnected")
}

func (s *clientWalletService) Account() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

func (s *clientWalletService) Signer() adapter.ContractSigner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signer
}

func (s *clientWalletService) OnAccountChanged(fn func(account string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *clientWalletService) accountsChanged(accounts []string) {
	var account string
	if len(accounts) > 0 {
		account = accounts[0]
	}

	s.mu.Lock()
	s.account = account
	fn := s.onChange
	s.mu.Unlock()

	s.logger.Info().Str("account", account).Msg("wallet account changed")
	if fn != nil {
		fn(account)
	}
}

func (s *clientWalletService) connectError(err error) error {
	s.logger.Err(err).Msg("wallet connection failed")
	return fmt.Errorf("%w: %w", ErrConnectWallet, mapAdapterError(err))
}
