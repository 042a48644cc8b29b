// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/logger"
)

type scriptedChecker struct {
	mu      sync.Mutex
	results []bool
	calls   int
}

func (s *scriptedChecker) IsAvailable(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	s.calls++
	return s.results[i]
}

type recordingPublisher struct {
	mu     sync.Mutex
	states []bool
}

func (r *recordingPublisher) SetAvailable(available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, available)
}

func (r *recordingPublisher) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.states...)
}

type countingWorker struct{ runs atomic.Int32 }

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunAndWait(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	ws.Wait()
}

func TestWorkers_EmptyWait(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
	ws.Wait()
}

func TestNewWorkers(t *testing.T) {
	cfg := config.Workers{ProbeInterval: time.Second, MetricsInterval: time.Minute}

	withoutMetrics := NewWorkers(cfg, &scriptedChecker{results: []bool{true}}, &recordingPublisher{}, nil, logger.Nop())
	assert.Len(t, withoutMetrics.workers, 1)

	withMetrics := NewWorkers(cfg, &scriptedChecker{results: []bool{true}}, &recordingPublisher{}, sdkmetric.NewManualReader(), logger.Nop())
	assert.Len(t, withMetrics.workers, 2)
}

func TestAvailabilityProbe_PublishesEveryResult(t *testing.T) {
	checker := &scriptedChecker{results: []bool{true, true, false, true}}
	publisher := &recordingPublisher{}
	probe := NewAvailabilityProbe(checker, publisher, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		probe.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(publisher.snapshot()) >= 4
	}, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	states := publisher.snapshot()
	assert.Equal(t, []bool{true, true, false, true}, states[:4])
	assert.False(t, states[len(states)-1], "stopped probe reports unavailable")
}

func newTestMeter(t *testing.T) (metric.Meter, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider.Meter("test"), reader
}

func TestSummarize(t *testing.T) {
	meter, reader := newTestMeter(t)
	ctx := context.Background()

	ops, err := meter.Int64Counter("contract.operations")
	require.NoError(t, err)
	ops.Add(ctx, 2, metric.WithAttributes(attribute.String("op", "getData")))
	ops.Add(ctx, 3, metric.WithAttributes(attribute.String("op", "setData")))

	latency, err := meter.Float64Histogram("contract.duration")
	require.NoError(t, err)
	latency.Record(ctx, 0.5)
	latency.Record(ctx, 1.5)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	totals := summarize(rm)

	assert.Equal(t, 5.0, totals["contract.operations"])
	assert.Equal(t, 2.0, totals["contract.duration.count"])
	assert.InDelta(t, 2.0, totals["contract.duration.sum"], 1e-9)
}

func TestMetricsReporter_LogsFinalReport(t *testing.T) {
	meter, reader := newTestMeter(t)
	written, err := meter.Int64Counter("contract.written_bytes")
	require.NoError(t, err)
	written.Add(context.Background(), 42)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	reporter := NewMetricsReporter(reader, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reporter.Run(ctx)

	var entry struct {
		Message string             `json:"message"`
		Metrics map[string]float64 `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contract metrics", entry.Message)
	assert.Equal(t, 42.0, entry.Metrics["contract.written_bytes"])
}

type failingCollector struct{}

func (failingCollector) Collect(context.Context, *metricdata.ResourceMetrics) error {
	return errors.New("reader shut down")
}

func TestMetricsReporter_CollectError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewMetricsReporter(failingCollector{}, time.Hour, &logger.Logger{Logger: zerolog.New(&buf)})

	reporter.report(context.Background())

	assert.Contains(t, buf.String(), "error collecting metrics")
}
