// Package workers runs the contract node's background jobs.
//
// Each Worker blocks in Run until its context is done. Workers starts them
// side by side and waits for all of them to return.
package workers

import (
	"context"

	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Worker is a background job of the node.
type Worker interface {
	Run(ctx context.Context)
}

// AvailabilityChecker reports whether contract storage can serve requests.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) bool
}

// AvailabilityPublisher exposes the probe result to clients, e.g. through
// gRPC health.
type AvailabilityPublisher interface {
	SetAvailable(available bool)
}

// MetricsCollector is satisfied by an OpenTelemetry SDK reader.
type MetricsCollector interface {
	Collect(ctx context.Context, rm *metricdata.ResourceMetrics) error
}
