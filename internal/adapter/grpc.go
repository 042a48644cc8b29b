package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ContractServiceName is the gRPC health service name of the contract.
const ContractServiceName = "artisan.Contract"

type grpcHealthChecker struct {
	conn    *grpc.ClientConn
	client  healthpb.HealthClient
	timeout time.Duration
}

func newGRPCHealthChecker(address string, timeout time.Duration) (*grpcHealthChecker, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &grpcHealthChecker{conn: conn, client: healthpb.NewHealthClient(conn), timeout: timeout}, nil
}

// IsAvailable maps SERVING to true and every other status to false.
func (g *grpcHealthChecker) IsAvailable(ctx context.Context) (bool, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Check(ctx, &healthpb.HealthCheckRequest{Service: ContractServiceName})
	if err != nil {
		return false, fmt.Errorf("health check: %w", err)
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

func (g *grpcHealthChecker) Close() error {
	return g.conn.Close()
}
