package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/artisan-market/internal/config"
	"github.com/MKhiriev/artisan-market/internal/logger"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the node's workers. The metrics reporter is skipped when
// collector is nil.
func NewWorkers(
	cfg config.Workers,
	checker AvailabilityChecker,
	publisher AvailabilityPublisher,
	collector MetricsCollector,
	logger *logger.Logger,
) *Workers {
	ws := &Workers{
		workers: []Worker{
			NewAvailabilityProbe(checker, publisher, cfg.ProbeInterval, logger.WithComponent("availability-probe")),
		},
	}
	if collector != nil {
		ws.workers = append(ws.workers,
			NewMetricsReporter(collector, cfg.MetricsInterval, logger.WithComponent("metrics-reporter")))
	}
	return ws
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
