package worker

import (
	"context"
	"fmt"
	"time"

	"sportsbook-settlement/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// SettlementWorker runs the scheduler on a cron schedule. A run that is
// still going when the next one is due makes the next one skip.
type SettlementWorker struct {
	scheduler service.SettlementScheduler
	spec      string
	timeout   time.Duration
	logger    zerolog.Logger
	cron      *cron.Cron

	// ctx is the parent of every run, set by Start
	ctx context.Context
}

// NewSettlementWorker accepts standard five-field specs and descriptors
// such as "@every 1m". timeout bounds a single run.
func NewSettlementWorker(scheduler service.SettlementScheduler, spec string, timeout time.Duration, logger zerolog.Logger) (*SettlementWorker, error) {
	w := &SettlementWorker{
		scheduler: scheduler,
		spec:      spec,
		timeout:   timeout,
		logger:    logger,
		ctx:       context.Background(),
	}

	cronLogger := cronLogger{logger: logger}
	w.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	if _, err := w.cron.AddFunc(spec, w.run); err != nil {
		return nil, fmt.Errorf("invalid settlement schedule %q: %w", spec, err)
	}
	return w, nil
}

// Start schedules runs until Stop. Cancelling ctx cancels a run in progress.
func (w *SettlementWorker) Start(ctx context.Context) {
	w.ctx = ctx
	w.cron.Start()
	w.logger.Info().Str("schedule", w.spec).Msg("Settlement worker started")
}

// Stop waits for a running settlement to finish
func (w *SettlementWorker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info().Msg("Settlement worker stopped")
}

func (w *SettlementWorker) run() {
	ctx := w.ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	w.logger.Debug().Msg("Running scheduled settlement")
	report, err := w.scheduler.CheckAndSettleCompletedBooks(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("Scheduled settlement finished with errors")
		return
	}
	if report.BooksSettled > 0 || report.BetsSettled > 0 || report.BetsFailed > 0 {
		w.logger.Info().
			Int("books_settled", report.BooksSettled).
			Int("bets_settled", report.BetsSettled).
			Int("bets_failed", report.BetsFailed).
			Msg("Scheduled settlement done")
	}
}

// cronLogger adapts zerolog to cron.Logger
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
