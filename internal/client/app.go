package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/crypto"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/internal/tui"
	"github.com/MKhiriev/artisan-market/internal/wallet"
	"github.com/MKhiriev/artisan-market/models"
)

type App struct {
	services *service.ClientServices
	contract adapter.ContractAdapter
	ui       UI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp unlocks the keystore, connects the contract node transport and
// builds the UI. Nothing is sent to the node until Run.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	keystore, err := wallet.OpenKeystore(cfg.Wallet.KeystorePath, cfg.Wallet.Passphrase, crypto.NewKeySealer())
	if err != nil {
		return nil, fmt.Errorf("open keystore: %w", err)
	}
	provider := wallet.NewKeystoreProvider(keystore)

	contract, err := adapter.NewHTTPContractAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create contract adapter: %w", err)
	}

	services := service.NewClientServices(contract, provider, log)

	ui, err := tui.New(services, provider, buildInfo, log)
	if err != nil {
		_ = contract.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(services, contract, ui, log), nil
}

func newApp(services *service.ClientServices, contract adapter.ContractAdapter, ui UI, log *logger.Logger) *App {
	return &App{
		services: services,
		contract: contract,
		ui:       ui,
		logger:   log.WithComponent("client"),
	}
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.contract.Close(); err != nil {
			a.logger.Err(err).Msg("error closing contract adapter")
		}
	}()

	version, err := a.contract.Version(ctx)
	if err != nil {
		// The UI still starts; the registry reader reports an empty list
		// while the node is unreachable.
		a.logger.Warn().Err(err).Msg("contract node version is unavailable")
	} else {
		a.logger.Info().Str("node_version", version).Msg("contract node reached")
	}

	if err = a.ui.Run(ctx); err != nil {
		return err
	}

	a.services.WalletService.Disconnect()
	return nil
}
