// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

// ─────────────────────────────────────────────
// Workers
// ─────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return immediately without workers.
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

// ─────────────────────────────────────────────
// PeriodicWorker
// ─────────────────────────────────────────────

func TestPeriodicWorker_RunsImmediatelyAndOnTicks(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewPeriodicWorker("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	go w.Run(ctx)

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPeriodicWorker_OneShot(t *testing.T) {
	var calls int
	w := NewPeriodicWorker("once", 0, func(context.Context) error {
		calls++
		return nil
	}, logger.Nop())

	w.Run(context.Background())

	assert.Equal(t, 1, calls)
}

func TestPeriodicWorker_KeepsRunningAfterError(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewPeriodicWorker("failing", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("server unavailable")
	}, logger.Nop())

	go w.Run(ctx)

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestPeriodicWorker_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)

	w := NewPeriodicWorker("stop", time.Hour, func(context.Context) error { return nil }, logger.Nop())
	go func() {
		defer wg.Done()
		w.Run(ctx)
	}()

	cancel()

	stopped := make(chan struct{})
	go func() {
		wg.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("PeriodicWorker.Run did not return after cancel")
	}
}

func TestPeriodicWorker_SkipsTaskWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int
	w := NewPeriodicWorker("cancelled", 0, func(context.Context) error {
		calls++
		return nil
	}, logger.Nop())
	w.Run(ctx)

	assert.Zero(t, calls)
}
