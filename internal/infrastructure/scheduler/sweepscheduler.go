package scheduler

import (
	"context"
	"time"

	"jannivaran/internal/application/escalation/usecases"
	"jannivaran/internal/shared/logger"
)

// SweepScheduler runs the SLA sweep on a fixed interval. A failed pass is
// logged and retried at the next tick.
type SweepScheduler struct {
	sweep    usecases.SweepExecutor
	interval time.Duration
	logger   logger.Interface
	stop     chan struct{}
	done     chan struct{}
}

func NewSweepScheduler(sweep usecases.SweepExecutor, interval time.Duration, log logger.Interface) *SweepScheduler {
	return &SweepScheduler{
		sweep:    sweep,
		interval: interval,
		logger:   log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start blocks, running a sweep immediately and then on every tick until
// Stop is called or the context is cancelled.
func (s *SweepScheduler) Start(ctx context.Context) {
	defer close(s.done)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop signals the scheduler to exit and waits for the current pass to end.
func (s *SweepScheduler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *SweepScheduler) runOnce(ctx context.Context) {
	start := time.Now()

	result, err := s.sweep.Execute(ctx)
	if err != nil {
		s.logger.Errorw("sweep pass failed", "error", err)
		return
	}

	s.logger.Infow("sweep pass completed",
		"scanned", result.Scanned,
		"escalated", result.Escalated,
		"warned", result.Warned,
		"duration", time.Since(start))
}
