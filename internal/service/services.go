package service

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/store"
)

type Services struct {
	ContractService   ContractService
	WalletAuthService WalletAuthService
	AppInfoService    AppInfoService
}

// NewServices wires the contract node services. Contract calls pass through
// metrics, then validation, then storage.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, meter metric.Meter, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	metrics, err := NewContractMetricsService(meter)
	if err != nil {
		return nil, fmt.Errorf("error creating contract metrics: %w", err)
	}

	contract := NewContractService(storages.ContractDataRepository, logger)
	contract = NewContractValidationService().Wrap(contract)
	contract = metrics.Wrap(contract)

	return &Services{
		ContractService:   contract,
		WalletAuthService: NewWalletAuthService(cfg.App, logger),
		AppInfoService:    appInfo,
	}, nil
}
