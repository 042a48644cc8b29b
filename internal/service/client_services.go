package service

import (
	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/internal/crypto"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/internal/wallet"
)

type ClientServices struct {
	WalletService   ClientWalletService
	RegistryService ClientRegistryService
	Status          *StatusTracker
}

func NewClientServices(contract adapter.ContractAdapter, provider wallet.Provider, log *logger.Logger) *ClientServices {
	status := NewStatusTracker()
	walletSvc := NewClientWalletService(provider, contract, log)
	registrySvc := NewClientRegistryService(
		contract,
		walletSvc,
		crypto.NewFHEEncoder(),
		utils.NewArtisanIDGenerator(),
		status,
		log,
	)

	return &ClientServices{
		WalletService:   walletSvc,
		RegistryService: registrySvc,
		Status:          status,
	}
}
