package workers

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/MKhiriev/artisan-market/internal/logger"
)

// MetricsReporter periodically collects the node's OpenTelemetry metrics
// and writes their cumulative totals to the log. It is the node's only
// metrics exporter.
type MetricsReporter struct {
	collector MetricsCollector
	interval  time.Duration
	logger    *logger.Logger
}

func NewMetricsReporter(collector MetricsCollector, interval time.Duration, logger *logger.Logger) *MetricsReporter {
	return &MetricsReporter{
		collector: collector,
		interval:  interval,
		logger:    logger,
	}
}

func (r *MetricsReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// final report on shutdown
			r.report(context.WithoutCancel(ctx))
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *MetricsReporter) report(ctx context.Context) {
	var rm metricdata.ResourceMetrics
	if err := r.collector.Collect(ctx, &rm); err != nil {
		r.logger.Err(err).Msg("error collecting metrics")
		return
	}

	totals := summarize(rm)
	if len(totals) == 0 {
		return
	}

	dict := zerolog.Dict()
	for name, value := range totals {
		dict = dict.Float64(name, value)
	}
	r.logger.Info().Dict("metrics", dict).Msg("contract metrics")
}

// summarize flattens every instrument to one number: the sum of its data
// points for counters, "<name>.count" and "<name>.sum" for histograms.
func summarize(rm metricdata.ResourceMetrics) map[string]float64 {
	totals := make(map[string]float64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					totals[m.Name] += float64(dp.Value)
				}
			case metricdata.Sum[float64]:
				for _, dp := range data.DataPoints {
					totals[m.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					totals[m.Name+".count"] += float64(dp.Count)
					totals[m.Name+".sum"] += dp.Sum
				}
			}
		}
	}
	return totals
}
