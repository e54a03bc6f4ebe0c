package service

import (
	"context"
	"fmt"

	"sportsbook-settlement/internal/metrics"
	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/rs/zerolog"
)

// Resettler revisits bets already settled against an outcome
type Resettler interface {
	ResettleOutcome(ctx context.Context, outcomeID string) (*model.SettlementReport, error)
}

type OutcomeResolverImpl struct {
	catalog   repository.CatalogRepository
	resettler Resettler
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewOutcomeResolver builds the resolver. resettler may be nil, in which case
// corrections only rewrite the outcome and settled bets are left for a later
// repair.
func NewOutcomeResolver(
	catalog repository.CatalogRepository,
	resettler Resettler,
	m *metrics.Metrics,
	logger zerolog.Logger,
) OutcomeResolver {
	return &OutcomeResolverImpl{
		catalog:   catalog,
		resettler: resettler,
		metrics:   m,
		logger:    logger,
	}
}

func (r *OutcomeResolverImpl) IsResolved(outcome *model.Outcome) bool {
	return outcome.IsResolved()
}

// SetResult applies PENDING -> terminal (first resolution) and terminal ->
// other terminal (correction). Setting the current value again changes
// nothing but still repairs bets settled against an older version.
func (r *OutcomeResolverImpl) SetResult(ctx context.Context, outcomeID string, value string) (*model.Resolution, error) {
	result, err := model.ParseOutcomeResult(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, value)
	}

	outcome, err := r.catalog.GetOutcome(ctx, outcomeID)
	if err != nil {
		return nil, fmt.Errorf("get outcome: %w", err)
	}

	previous := outcome.Result
	resolution := &model.Resolution{Outcome: outcome, Previous: previous}

	switch {
	case previous == result:
		if result.IsTerminal() && outcome.ResultVersion > 1 {
			resolution.Resettled = r.resettle(ctx, outcome.ID)
		}
		return resolution, nil
	case previous.IsTerminal() && result == model.ResultPending:
		return nil, fmt.Errorf("%w: outcome %s is %s", model.ErrOutcomeReopen, outcome.ID, previous)
	}

	ok, err := r.catalog.SetOutcomeResult(ctx, outcome.ID, outcome.ResultVersion, result)
	if err != nil {
		return nil, fmt.Errorf("set outcome result: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: outcome %s", model.ErrResultChanged, outcome.ID)
	}

	updated, err := r.catalog.GetOutcome(ctx, outcome.ID)
	if err != nil {
		return nil, fmt.Errorf("get outcome: %w", err)
	}
	resolution.Outcome = updated
	resolution.Changed = true
	resolution.Correction = previous.IsTerminal()

	r.logger.Info().
		Str("outcome_id", updated.ID).
		Str("previous", previous.String()).
		Str("result", updated.Result.String()).
		Int("result_version", updated.ResultVersion).
		Bool("correction", resolution.Correction).
		Msg("outcome result set")

	if resolution.Correction {
		resolution.Resettled = r.resettle(ctx, updated.ID)
	}
	return resolution, nil
}

// resettle failures are logged, the result change itself stands. Repeating
// the same SetResult call retries them.
func (r *OutcomeResolverImpl) resettle(ctx context.Context, outcomeID string) *model.SettlementReport {
	if r.resettler == nil {
		return nil
	}

	report, err := r.resettler.ResettleOutcome(ctx, outcomeID)
	if err != nil {
		r.metrics.Error("resettle")
		r.logger.Error().Err(err).Str("outcome_id", outcomeID).Msg("failed to resettle outcome")
		return nil
	}
	if report.BetsFailed > 0 {
		r.logger.Warn().
			Str("outcome_id", outcomeID).
			Int("bets_failed", report.BetsFailed).
			Msg("outcome resettled with failures")
	}
	return report
}
