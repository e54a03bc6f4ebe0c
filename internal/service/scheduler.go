package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sportsbook-settlement/internal/metrics"
	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type SchedulerOptions struct {
	Concurrency     int
	RetryAttempts   int
	RetryBackoff    time.Duration
	SettlingTimeout time.Duration
	BatchSize       int
}

func (o SchedulerOptions) withDefaults() SchedulerOptions {
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.RetryAttempts < 0 {
		o.RetryAttempts = 0
	}
	if o.SettlingTimeout <= 0 {
		o.SettlingTimeout = 5 * time.Minute
	}
	if o.BatchSize < 1 {
		o.BatchSize = 500
	}
	return o
}

type SettlementSchedulerImpl struct {
	detector  CompletionDetector
	processor SettlementProcessor
	catalog   repository.CatalogRepository
	opts      SchedulerOptions
	metrics   *metrics.Metrics
	logger    zerolog.Logger

	mu      sync.Mutex
	lastRun *model.SettlementRun
}

func NewSettlementScheduler(
	detector CompletionDetector,
	processor SettlementProcessor,
	catalog repository.CatalogRepository,
	opts SchedulerOptions,
	m *metrics.Metrics,
	logger zerolog.Logger,
) SettlementScheduler {
	return &SettlementSchedulerImpl{
		detector:  detector,
		processor: processor,
		catalog:   catalog,
		opts:      opts.withDefaults(),
		metrics:   m,
		logger:    logger,
	}
}

// betWork pairs a bet with the outcome it settles against
type betWork struct {
	bet     *model.Bet
	outcome *model.Outcome
}

// CheckAndSettleCompletedBooks completes every eligible book and settles its
// bets. It is safe to call from several triggers at once: books and bets are
// claimed by compare-and-set, so each is processed by exactly one caller.
// Failures below the book list are counted in the report and never stop
// sibling work. An error is returned only when the run could not look for
// books at all, and the report still carries what was done before that.
func (s *SettlementSchedulerImpl) CheckAndSettleCompletedBooks(ctx context.Context) (*model.SettlementReport, error) {
	started := time.Now()
	report := &model.SettlementReport{}

	// bets left PENDING under a book some earlier run completed
	s.sweep(ctx, "orphan_sweep", s.catalog.ListPendingBetsOfCompletedBooks, report)
	// settled bets whose outcome was corrected after they were last settled
	s.sweep(ctx, "lagging_sweep", s.catalog.ListBetsBehindOutcome, report)

	var runErr error
	for book, err := range s.detector.FindCompletable(ctx) {
		if err != nil {
			s.metrics.Error("detect")
			s.logger.Error().Err(err).Msg("failed to check book completion")
			if errors.Is(err, errBookListing) || ctx.Err() != nil {
				runErr = err
			}
			continue
		}

		report.BooksSettled++
		s.settleAll(ctx, s.collectBook(ctx, book, report), report)
	}

	s.metrics.ObserveRun(time.Since(started))
	s.metrics.BetsFailed(report.BetsFailed)
	s.recordRun(started, report, runErr)

	s.logger.Info().
		Int("books_settled", report.BooksSettled).
		Int("bets_settled", report.BetsSettled).
		Int("bets_failed", report.BetsFailed).
		Dur("duration", time.Since(started)).
		Msg("settlement run finished")

	if runErr != nil {
		return report, fmt.Errorf("settlement run: %w", runErr)
	}
	return report, nil
}

// sweep settles the bets list returns. A bet whose outcome cannot be loaded
// counts as failed; the next run lists it again.
func (s *SettlementSchedulerImpl) sweep(ctx context.Context, stage string, list func(context.Context, int) ([]*model.Bet, error), report *model.SettlementReport) {
	bets, err := list(ctx, s.opts.BatchSize)
	if err != nil {
		s.metrics.Error(stage)
		s.logger.Error().Err(err).Str("stage", stage).Msg("failed to list bets to sweep")
		return
	}
	if len(bets) == 0 {
		return
	}

	outcomes := make(map[string]*model.Outcome)
	unavailable := make(map[string]bool)
	work := make([]betWork, 0, len(bets))
	for _, bet := range bets {
		if unavailable[bet.OutcomeID] {
			report.BetsFailed++
			continue
		}
		outcome, ok := outcomes[bet.OutcomeID]
		if !ok {
			outcome, err = s.catalog.GetOutcome(ctx, bet.OutcomeID)
			if err != nil {
				unavailable[bet.OutcomeID] = true
				report.BetsFailed++
				s.metrics.Error(stage)
				s.logger.Error().
					Err(err).
					Str("stage", stage).
					Str("outcome_id", bet.OutcomeID).
					Msg("failed to load outcome of swept bet")
				continue
			}
			outcomes[bet.OutcomeID] = outcome
		}
		work = append(work, betWork{bet: bet, outcome: outcome})
	}

	s.logger.Info().Str("stage", stage).Int("bets", len(work)).Msg("sweeping bets")
	s.settleAll(ctx, work, report)
}

// collectBook walks book -> events -> outcomes -> bets. A listing that fails
// counts as one failure and its siblings are still collected; the bets it
// hid stay PENDING under a COMPLETED book, which the orphan sweep picks up.
func (s *SettlementSchedulerImpl) collectBook(ctx context.Context, book *model.Book, report *model.SettlementReport) []betWork {
	events, err := s.catalog.ListEventsOf(ctx, book.ID)
	if err != nil {
		s.collectFailed(report, fmt.Errorf("list events: %w", err), "book_id", book.ID)
		return nil
	}

	var work []betWork
	for _, event := range events {
		outcomes, err := s.catalog.ListOutcomesOf(ctx, event.ID)
		if err != nil {
			s.collectFailed(report, fmt.Errorf("list outcomes: %w", err), "event_id", event.ID)
			continue
		}
		for _, outcome := range outcomes {
			bets, err := s.catalog.ListBetsOf(ctx, outcome.ID)
			if err != nil {
				s.collectFailed(report, fmt.Errorf("list bets: %w", err), "outcome_id", outcome.ID)
				continue
			}
			for _, bet := range bets {
				if bet.Status != model.BetPending {
					continue
				}
				work = append(work, betWork{bet: bet, outcome: outcome})
			}
		}
	}
	return work
}

func (s *SettlementSchedulerImpl) collectFailed(report *model.SettlementReport, err error, key, id string) {
	report.BetsFailed++
	s.metrics.Error("collect")
	s.logger.Error().Err(err).Str(key, id).Msg("failed to collect bets of completed book")
}

// settleAll settles bets in parallel, bounded by the configured concurrency
func (s *SettlementSchedulerImpl) settleAll(ctx context.Context, work []betWork, report *model.SettlementReport) {
	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(s.opts.Concurrency)

	for _, w := range work {
		g.Go(func() error {
			result, err := s.settleWithRetry(ctx, w.bet, w.outcome)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.BetsFailed++
				s.metrics.Error("settle")
				s.logger.Error().
					Err(err).
					Str("bet_id", w.bet.ID).
					Str("outcome_id", w.outcome.ID).
					Msg("failed to settle bet")
				return nil
			}
			if result.Applied() {
				report.BetsSettled++
			}
			return nil
		})
	}
	_ = g.Wait()
}

// settleWithRetry retries transient storage failures through Resume with
// exponential backoff. Anything else fails the bet at once.
func (s *SettlementSchedulerImpl) settleWithRetry(ctx context.Context, bet *model.Bet, outcome *model.Outcome) (model.SettlementOutcome, error) {
	result, err := s.processor.Settle(ctx, bet, outcome)

	backoff := s.opts.RetryBackoff
	for attempt := 1; err != nil && errors.Is(err, model.ErrTransientStorage) && attempt <= s.opts.RetryAttempts; attempt++ {
		s.logger.Warn().
			Err(err).
			Str("bet_id", bet.ID).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("retrying bet settlement")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2

		result, err = s.processor.Resume(ctx, bet.ID)
	}
	return result, err
}

// ResumeStale finishes bets whose claim outlived the settling timeout
func (s *SettlementSchedulerImpl) ResumeStale(ctx context.Context) (*model.SettlementReport, error) {
	cutoff := time.Now().Add(-s.opts.SettlingTimeout)
	report, err := s.processor.ResumeStale(ctx, cutoff, s.opts.BatchSize)
	if err != nil {
		s.metrics.Error("resume_stale")
		return nil, fmt.Errorf("resume stale bets: %w", err)
	}
	s.metrics.BetsFailed(report.BetsFailed)
	if report.BetsSettled > 0 || report.BetsFailed > 0 {
		s.logger.Info().
			Int("bets_settled", report.BetsSettled).
			Int("bets_failed", report.BetsFailed).
			Msg("stale bets resumed")
	}
	return report, nil
}

func (s *SettlementSchedulerImpl) recordRun(started time.Time, report *model.SettlementReport, err error) {
	run := &model.SettlementRun{
		Report:     *report,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if err != nil {
		run.Err = err.Error()
	}

	s.mu.Lock()
	s.lastRun = run
	s.mu.Unlock()
}

// LastRun returns a copy of the most recent run, or nil before the first one
func (s *SettlementSchedulerImpl) LastRun() *model.SettlementRun {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastRun == nil {
		return nil
	}
	run := *s.lastRun
	return &run
}
