// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-acervo/internal/logger"
)

// PeriodicWorker runs a task immediately and then once per interval.
// A failing task is logged and retried on the next tick.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	task     Task
	logger   *logger.Logger
}

// NewPeriodicWorker returns a worker running task every interval. A
// non-positive interval runs the task once.
func NewPeriodicWorker(name string, interval time.Duration, task Task, logger *logger.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

// Run implements [Worker].
func (p *PeriodicWorker) Run(ctx context.Context) {
	p.runOnce(ctx)
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("worker", p.name).Msg("worker stopped")
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *PeriodicWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.task(ctx); err != nil {
		p.logger.Warn().Err(err).Str("worker", p.name).Msg("worker task failed")
	}
}
