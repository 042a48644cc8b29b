// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/internal/validators"
	"github.com/MKhiriev/artisan-market/internal/wallet"
	"github.com/MKhiriev/artisan-market/models"
)

type nonceGenerator interface {
	Generate() string
}

// walletAuthService is the concrete implementation of WalletAuthService.
// Challenges live in an in-memory TTL cache keyed by nonce and can be
// redeemed once.
type walletAuthService struct {
	// challenges maps nonce to the issued models.Challenge.
	challenges *cache.Cache

	challengeTTL time.Duration
	nonces       nonceGenerator
	validator    validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewWalletAuthService constructs a WalletAuthService from the token and
// challenge settings in cfg.
func NewWalletAuthService(cfg config.App, logger *logger.Logger) WalletAuthService {
	return &walletAuthService{
		challenges:    cache.New(cfg.ChallengeTTL, 2*cfg.ChallengeTTL),
		challengeTTL:  cfg.ChallengeTTL,
		nonces:        utils.NewNonceGenerator(),
		validator:     validators.NewContractValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// IssueChallenge creates a one-time message for address. The wallet proves
// control of the address by signing [models.Challenge.Message].
func (a *walletAuthService) IssueChallenge(ctx context.Context, address string) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.ChallengeRequest{Address: address}); err != nil {
		log.Err(err).Str("address", address).Msg("invalid challenge request")
		return models.Challenge{}, mapValidationError(err)
	}

	challenge := models.Challenge{
		Address:   address,
		Nonce:     a.nonces.Generate(),
		ExpiresAt: a.now().Add(a.challengeTTL).UTC(),
	}
	a.challenges.Set(challenge.Nonce, challenge, a.challengeTTL)

	log.Debug().Str("address", address).Time("expires_at", challenge.ExpiresAt).Msg("wallet challenge issued")
	return challenge, nil
}

// Connect redeems the challenge identified by req.Nonce and issues a token
// for its address.
//
// Returns:
//   - ErrInvalidAddress / ErrInvalidDataProvided for malformed requests.
//   - ErrChallengeNotFound if the nonce is unknown, used, expired or was
//     issued for another address.
//   - ErrInvalidSignature if the signature or public key do not match.
//   - ErrTokenCreationFailed if signing the JWT fails.
func (a *walletAuthService) Connect(ctx context.Context, req models.ConnectRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("address", req.Address).Msg("invalid connect request")
		return models.Token{}, mapValidationError(err)
	}

	cached, found := a.challenges.Get(req.Nonce)
	// a nonce is redeemable once, even when verification below fails
	a.challenges.Delete(req.Nonce)
	if !found {
		return models.Token{}, ErrChallengeNotFound
	}

	challenge := cached.(models.Challenge)
	if !strings.EqualFold(challenge.Address, req.Address) || a.now().After(challenge.ExpiresAt) {
		return models.Token{}, ErrChallengeNotFound
	}

	if !wallet.VerifySignature(req.Address, ed25519.PublicKey(req.PublicKey), challenge.Message(), req.Signature) {
		log.Warn().Str("address", req.Address).Msg("wallet signature rejected")
		return models.Token{}, ErrInvalidSignature
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, challenge.Address, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("address", challenge.Address).Msg("wallet connected")
	return token, nil
}

// ParseToken normalises every validation failure (expired, wrong issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (a *walletAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
