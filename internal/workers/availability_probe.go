// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/artisan-market/internal/logger"
)

// AvailabilityProbe checks contract storage on a fixed period and publishes
// the result. The first check runs immediately.
type AvailabilityProbe struct {
	checker   AvailabilityChecker
	publisher AvailabilityPublisher
	interval  time.Duration
	logger    *logger.Logger
}

func NewAvailabilityProbe(checker AvailabilityChecker, publisher AvailabilityPublisher, interval time.Duration, logger *logger.Logger) *AvailabilityProbe {
	return &AvailabilityProbe{
		checker:   checker,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

func (p *AvailabilityProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var last *bool
	for {
		available := p.probe(ctx)
		if last == nil || *last != available {
			p.logger.Info().Bool("available", available).Msg("contract availability changed")
		}
		last = &available

		select {
		case <-ctx.Done():
			p.publisher.SetAvailable(false)
			return
		case <-ticker.C:
		}
	}
}

func (p *AvailabilityProbe) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	available := p.checker.IsAvailable(probeCtx)
	p.publisher.SetAvailable(available)
	return available
}
