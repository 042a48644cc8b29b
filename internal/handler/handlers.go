package handler

import (
	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/handler/grpc"
	"github.com/MKhiriev/artisan-market/internal/handler/http"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetAvailable publishes contract availability on every transport that
// reports it. Only gRPC health does; HTTP answers availability per request.
func (h *Handlers) SetAvailable(available bool) {
	if h.GRPC != nil {
		h.GRPC.SetAvailable(available)
	}
}
