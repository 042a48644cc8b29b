package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/MKhiriev/artisan-market/internal/store"
	"github.com/MKhiriev/artisan-market/models"
)

// MeterName is the instrumentation scope of contract metrics.
const MeterName = "github.com/MKhiriev/artisan-market/contract"

// ContractMetricsService records OpenTelemetry instruments around a
// ContractService.
type ContractMetricsService struct {
	inner ContractService

	operations   metric.Int64Counter
	failures     metric.Int64Counter
	writtenBytes metric.Int64Counter
	duration     metric.Float64Histogram
}

func NewContractMetricsService(meter metric.Meter) (ContractServiceWrapper, error) {
	operations, err := meter.Int64Counter(
		"contract.operations",
		metric.WithDescription("Contract calls by operation."),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"contract.failures",
		metric.WithDescription("Failed contract calls by operation and reason."),
	)
	if err != nil {
		return nil, err
	}

	writtenBytes, err := meter.Int64Counter(
		"contract.written_bytes",
		metric.WithDescription("Bytes accepted by setData."),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"contract.duration",
		metric.WithDescription("Contract call latency."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ContractMetricsService{
		operations:   operations,
		failures:     failures,
		writtenBytes: writtenBytes,
		duration:     duration,
	}, nil
}

func (m *ContractMetricsService) IsAvailable(ctx context.Context) bool {
	start := time.Now()
	available := m.inner.IsAvailable(ctx)

	var err error
	if !available {
		err = ErrContractUnavailable
	}
	m.record(ctx, "isAvailable", start, err)
	return available
}

func (m *ContractMetricsService) GetData(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := m.inner.GetData(ctx, key)
	m.record(ctx, "getData", start, err)
	return value, err
}

func (m *ContractMetricsService) SetData(ctx context.Context, from, key string, value []byte) (models.Transaction, error) {
	start := time.Now()
	tx, err := m.inner.SetData(ctx, from, key, value)
	m.record(ctx, "setData", start, err)
	if err == nil {
		m.writtenBytes.Add(ctx, int64(len(value)))
	}
	return tx, err
}

func (m *ContractMetricsService) Wrap(wrapped ContractService) ContractService {
	m.inner = wrapped
	return m
}

func (m *ContractMetricsService) record(ctx context.Context, op string, start time.Time, err error) {
	opAttr := metric.WithAttributes(attribute.String("op", op))

	m.operations.Add(ctx, 1, opAttr)
	m.duration.Record(ctx, time.Since(start).Seconds(), opAttr)

	if err != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("reason", failureReason(err)),
		))
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrValidationInvalidKey),
		errors.Is(err, ErrValidationValueTooLarge),
		errors.Is(err, ErrInvalidAddress),
		errors.Is(err, ErrInvalidDataProvided):
		return "validation"
	case errors.Is(err, ErrContractUnavailable):
		return "unavailable"
	case errors.Is(err, store.ErrVersionConflict):
		return "conflict"
	default:
		return "internal"
	}
}
