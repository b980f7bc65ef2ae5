// Package worker runs the scheduled background jobs: the daily refill
// that restores every living character at midnight UTC.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/etheris-rpg/etheris/internal/logger"
)

// RefillService is the slice of the character service the worker needs.
type RefillService interface {
	RefillAll(ctx context.Context) (int, error)
}

// Notifier announces the refill to opted-in users. Nil disables
// announcements.
type Notifier interface {
	AnnounceRefill(ctx context.Context, refilled int) error
}

// DailyRefillWorker restores action points and attributes at 00:00 UTC.
type DailyRefillWorker struct {
	service  RefillService
	notifier Notifier
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewDailyRefillWorker creates a stopped worker; call Start to schedule.
func NewDailyRefillWorker(service RefillService, notifier Notifier) *DailyRefillWorker {
	return &DailyRefillWorker{
		service:  service,
		notifier: notifier,
		shutdown: make(chan struct{}),
		now:      time.Now,
	}
}

// Start schedules the next refill.
func (w *DailyRefillWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next midnight. Two-stage scheduling
// keeps an early-firing timer from rescheduling in a tight loop: far from
// the deadline the worker wakes 45 minutes early and recomputes.
func (w *DailyRefillWorker) scheduleNext() {
	duration := w.timeUntilNextRefill()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > time.Hour {
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()
		log.Info("daily refill standing by", "next_check_at", w.now().UTC().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Timer jitter: fired early, reschedule for the remainder.
		rem := w.timeUntilNextRefill()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeRefill()
		w.scheduleNext()
	})
	w.mu.Unlock()
	log.Info("daily refill approaching", "next_refill_at", w.now().UTC().Add(duration))
}

// executeRefill runs the sweep in a tracked goroutine.
func (w *DailyRefillWorker) executeRefill() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info("daily refill starting")

		refilled, err := w.service.RefillAll(ctx)
		if err != nil {
			log.Error("daily refill failed", "error", err)
			return
		}
		log.Info("daily refill completed", "characters_refilled", refilled)

		if w.notifier != nil && refilled > 0 {
			if err := w.notifier.AnnounceRefill(ctx, refilled); err != nil {
				log.Warn("refill announcement failed", "error", err)
			}
		}
	}()
}

// RunNow triggers an immediate sweep outside the schedule (admin tooling)
// and waits for it to finish.
func (w *DailyRefillWorker) RunNow(ctx context.Context) (int, error) {
	return w.service.RefillAll(ctx)
}

// Shutdown cancels the pending timer and waits for in-flight sweeps.
func (w *DailyRefillWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("shutting down daily refill worker")

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		log.Warn("daily refill shutdown timeout, a sweep may still be running")
		return ctx.Err()
	}
}

// timeUntilNextRefill computes the duration until the next 00:00 UTC.
func (w *DailyRefillWorker) timeUntilNextRefill() time.Duration {
	now := w.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
