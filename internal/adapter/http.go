package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/models"
)

const (
	versionPath   = "/api/version"
	availablePath = "/api/contract/available"
	dataPath      = "/api/contract/data/{key}"
	challengePath = "/api/wallet/challenge"
	connectPath   = "/api/wallet/connect"
)

// availabilityChecker is satisfied by the gRPC health client.
type availabilityChecker interface {
	IsAvailable(ctx context.Context) (bool, error)
	Close() error
}

type httpContractAdapter struct {
	client       *utils.HTTPClient
	availability availabilityChecker
	logger       *logger.Logger
}

// NewHTTPContractAdapter constructs the REST implementation of
// [ContractAdapter]. When cfg.GRPCAddress is set, IsAvailable is answered by
// the node's gRPC health service instead of the REST endpoint.
func NewHTTPContractAdapter(cfg config.ClientAdapter, log *logger.Logger) (ContractAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	a := &httpContractAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}

	if cfg.GRPCAddress != "" {
		checker, err := newGRPCHealthChecker(cfg.GRPCAddress, cfg.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("grpc health client: %w", err)
		}
		a.availability = checker
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpContractAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpContractAdapter) IsAvailable(ctx context.Context) (bool, error) {
	if h.availability != nil {
		return h.availability.IsAvailable(ctx)
	}

	var result models.AvailabilityResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(availablePath)
	if err != nil {
		return false, fmt.Errorf("availability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Available, nil
}

func (h *httpContractAdapter) GetData(ctx context.Context, key string) ([]byte, error) {
	return getData(ctx, h.client, key)
}

func getData(ctx context.Context, client *utils.HTTPClient, key string) ([]byte, error) {
	var result models.DataResponse
	resp, err := client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		SetResult(&result).
		Get(dataPath)
	if err != nil {
		return nil, fmt.Errorf("get data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Value == nil {
		return []byte{}, nil
	}
	return result.Value, nil
}

func (h *httpContractAdapter) RequestChallenge(ctx context.Context, address string) (models.Challenge, error) {
	var challenge models.Challenge
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengeRequest{Address: address}).
		SetResult(&challenge).
		Post(challengePath)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Challenge{}, err
	}

	return challenge, nil
}

func (h *httpContractAdapter) ConnectWallet(ctx context.Context, req models.ConnectRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(connectPath)
	if err != nil {
		return "", fmt.Errorf("connect request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("connect parse bearer token: %w", err)
	}

	return token, nil
}

func (h *httpContractAdapter) NewSigner(address, token string, confirmer TxConfirmer) ContractSigner {
	return &httpContractSigner{
		reader:    h,
		client:    h.client,
		address:   address,
		token:     strings.TrimSpace(token),
		confirmer: confirmer,
		logger:    h.logger,
	}
}

func (h *httpContractAdapter) Close() error {
	if h.availability != nil {
		return h.availability.Close()
	}
	return nil
}
