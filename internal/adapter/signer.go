package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/models"
)

type httpContractSigner struct {
	reader    ContractReader
	client    *utils.HTTPClient
	address   string
	token     string
	confirmer TxConfirmer
	logger    *logger.Logger
}

func (s *httpContractSigner) IsAvailable(ctx context.Context) (bool, error) {
	return s.reader.IsAvailable(ctx)
}

func (s *httpContractSigner) GetData(ctx context.Context, key string) ([]byte, error) {
	return s.reader.GetData(ctx, key)
}

// SetData asks the wallet to confirm, then PUTs the value with the session
// token. A declined confirmation never reaches the node.
func (s *httpContractSigner) SetData(ctx context.Context, key string, value []byte) (models.Transaction, error) {
	if s.confirmer != nil {
		if err := s.confirmer.ConfirmTransaction(ctx, s.address, key); err != nil {
			return models.Transaction{}, fmt.Errorf("confirm transaction: %w", err)
		}
	}

	var tx models.Transaction
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("key", key).
		SetBody(models.SetDataRequest{Value: value}).
		SetResult(&tx).
		Put(dataPath)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("set data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	s.logger.Debug().
		Str("key", key).
		Str("tx_hash", tx.Hash).
		Int64("version", tx.Version).
		Msg("contract write accepted")

	return tx, nil
}
