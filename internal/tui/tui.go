// Package tui is the terminal front end of the artisan marketplace.
//
// The program renders the registry, lets the user filter it, connect a
// wallet and list a new artisan. Service callbacks that fire on other
// goroutines (status banner, account changes, transaction approvals) are
// turned into messages and sent into the running program.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/internal/wallet"
	"github.com/MKhiriev/artisan-market/models"
	tea "github.com/charmbracelet/bubbletea"
)

// AccountManager manages the accounts of a local wallet.
type AccountManager interface {
	SwitchAccount()
	CreateAccount() (string, error)
}

// WalletControl is the local wallet surface the UI drives: account
// management plus the approval prompt shown before every write.
type WalletControl interface {
	AccountManager
	SetApprover(approver wallet.Approver)
}

type TUI struct {
	services  *service.ClientServices
	wallet    WalletControl
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New builds the UI. control may be nil, in which case account management
// is hidden and transactions are approved by the wallet itself.
func New(services *service.ClientServices, control WalletControl, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: nil services")
	}
	return &TUI{
		services:  services,
		wallet:    control,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	var accounts AccountManager
	if t.wallet != nil {
		accounts = t.wallet
	}

	root := NewRootModel(newMainLoopModel(ctx, t.services, accounts), t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.Status.Subscribe(func(status models.TransactionStatus) {
		program.Send(statusChangedMsg{status: status})
	})
	t.services.WalletService.OnAccountChanged(func(account string) {
		program.Send(accountChangedMsg{account: account})
	})
	if t.wallet != nil {
		t.wallet.SetApprover(newApprover(program.Send))
	}

	t.logger.Info().Msg("ui started")
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		t.logger.Info().Msg("ui stopped by context")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	t.logger.Info().Msg("ui closed by user")
	return nil
}

// newApprover returns a wallet approver that asks the user through the
// running program and waits for the answer.
func newApprover(send func(tea.Msg)) wallet.Approver {
	return func(ctx context.Context, address, key string) (bool, error) {
		reply := make(chan bool, 1)
		send(approvalRequestMsg{address: address, key: key, reply: reply})

		select {
		case approved := <-reply:
			return approved, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
