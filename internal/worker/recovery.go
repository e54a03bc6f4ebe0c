package worker

import (
	"context"
	"sync"
	"time"

	"sportsbook-settlement/internal/service"

	"github.com/rs/zerolog"
)

// RecoveryWorker periodically finishes bets stuck in SETTLING
type RecoveryWorker struct {
	scheduler service.SettlementScheduler
	interval  time.Duration
	logger    zerolog.Logger
	stopChan  chan struct{}
	wg        *sync.WaitGroup
}

func NewRecoveryWorker(scheduler service.SettlementScheduler, interval time.Duration, logger zerolog.Logger) *RecoveryWorker {
	return &RecoveryWorker{
		scheduler: scheduler,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
		wg:        &sync.WaitGroup{},
	}
}

func (w *RecoveryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Recovery worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running stale bet recovery")
				if _, err := w.scheduler.ResumeStale(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to resume stale bets")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Recovery worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Recovery worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *RecoveryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
