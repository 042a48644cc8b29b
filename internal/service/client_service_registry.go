// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/crypto"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/models"
)

// Contract storage layout of the registry.
const (
	IndexKey        = models.RegistryIndexKey
	RecordKeyPrefix = "artisan_"

	// defaultRating is the rating every new listing starts with.
	defaultRating = "5"
)

// RecordKey returns the storage key of the record with the given id.
func RecordKey(id string) string {
	return RecordKeyPrefix + id
}

type clientRegistryService struct {
	reader  adapter.ContractReader
	session WalletSession
	encoder crypto.FHEEncoder
	ids     IDGenerator
	status  *StatusTracker
	logger  *logger.Logger
}

// NewClientRegistryService builds the registry reader/writer. Reads go
// through reader; writes use the signing handle of session at call time.
func NewClientRegistryService(
	reader adapter.ContractReader,
	session WalletSession,
	encoder crypto.FHEEncoder,
	ids IDGenerator,
	status *StatusTracker,
	log *logger.Logger,
) ClientRegistryService {
	return &clientRegistryService{
		reader:  reader,
		session: session,
		encoder: encoder,
		ids:     ids,
		status:  status,
		logger:  log.WithComponent("registry"),
	}
}

func (s *clientRegistryService) LoadAll(ctx context.Context) []models.Artisan {
	available, err := s.reader.IsAvailable(ctx)
	if err != nil {
		s.logger.Err(err).Msg("contract availability check failed")
		return []models.Artisan{}
	}
	if !available {
		s.logger.Warn().Msg("contract is not available")
		return []models.Artisan{}
	}

	rawIndex, err := s.reader.GetData(ctx, IndexKey)
	if err != nil {
		s.logger.Err(err).Msg("failed to read registry index")
		return []models.Artisan{}
	}

	ids := s.parseIndex(rawIndex)
	artisans := make([]models.Artisan, 0, len(ids))

	for _, id := range ids {
		raw, err := s.reader.GetData(ctx, RecordKey(id))
		if err != nil {
			s.logger.Err(err).Str("id", id).Msg("failed to read artisan record")
			continue
		}
		if len(raw) == 0 {
			s.logger.Warn().Str("id", id).Msg("artisan record is empty")
			continue
		}

		var payload models.ArtisanPayload
		if err = json.Unmarshal(raw, &payload); err != nil {
			s.logger.Err(err).Str("id", id).Msg("error parsing artisan record")
			continue
		}

		artisans = append(artisans, payload.ToArtisan(id))
	}

	return artisans
}

func (s *clientRegistryService) AddArtisan(ctx context.Context, input models.ArtisanInput) (models.Artisan, error) {
	signer := s.session.Signer()
	if signer == nil {
		return models.Artisan{}, ErrWalletNotConnected
	}
	if input.Name == "" || input.Category == "" || input.Style == "" {
		return models.Artisan{}, ErrRequiredFieldsMissing
	}

	s.status.Pending(app.UIEncrypting)

	artisan, err := s.submit(ctx, signer, input)
	if err != nil {
		s.logger.Err(err).Msg("artisan submission failed")
		s.status.Error(submissionErrorMessage(err), ErrorStatusTTL)
		return models.Artisan{}, err
	}

	s.logger.Info().Str("id", artisan.ID).Str("owner", artisan.Owner).Msg("artisan added")
	s.status.Success(app.UIArtisanAdded, SuccessStatusTTL)
	return artisan, nil
}

// submit writes the record first and the index second. A failure after the
// first write leaves an unlisted record behind; nothing is rolled back.
func (s *clientRegistryService) submit(ctx context.Context, signer adapter.ContractSigner, input models.ArtisanInput) (models.Artisan, error) {
	style, err := s.encoder.EncryptJSON(input.Style)
	if err != nil {
		return models.Artisan{}, fmt.Errorf("encode style: %w", err)
	}

	id := s.ids.Generate()
	payload := models.ArtisanPayload{
		Name:     input.Name,
		Category: input.Category,
		Location: input.Location,
		Rating:   s.encoder.EncryptRaw(defaultRating),
		Style:    style,
		Owner:    s.session.Account(),
	}

	record, err := crypto.MarshalJSON(payload)
	if err != nil {
		return models.Artisan{}, fmt.Errorf("marshal artisan record: %w", err)
	}
	if _, err = signer.SetData(ctx, RecordKey(id), record); err != nil {
		return models.Artisan{}, err
	}

	rawIndex, err := signer.GetData(ctx, IndexKey)
	if err != nil {
		return models.Artisan{}, err
	}
	ids := append(s.parseIndex(rawIndex), id)

	index, err := crypto.MarshalJSON(ids)
	if err != nil {
		return models.Artisan{}, fmt.Errorf("marshal registry index: %w", err)
	}
	if _, err = signer.SetData(ctx, IndexKey, index); err != nil {
		return models.Artisan{}, err
	}

	return payload.ToArtisan(id), nil
}

// parseIndex treats an empty or malformed index as an empty registry.
func (s *clientRegistryService) parseIndex(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Err(err).Msg("error parsing registry index")
		return []string{}
	}
	return ids
}

func submissionErrorMessage(err error) string {
	if strings.Contains(err.Error(), app.UIRejectionFragment) {
		return app.UITxRejected
	}
	return app.UISubmissionFailed + err.Error()
}
