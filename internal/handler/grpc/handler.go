package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/service"
)

// Handler is the root gRPC transport handler.
//
// The node exposes only the standard health protocol. The status of
// [adapter.ContractServiceName] follows contract storage availability and
// starts as NOT_SERVING until the first probe.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(adapter.ContractServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetAvailable flips the health status of the contract service.
func (h *Handler) SetAvailable(available bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if available {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(adapter.ContractServiceName, status)
}

// Shutdown reports NOT_SERVING for every service, so clients stop routing
// to the node while it drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
