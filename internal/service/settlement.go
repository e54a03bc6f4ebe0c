package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sportsbook-settlement/internal/events"
	"sportsbook-settlement/internal/metrics"
	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettleKey identifies the ledger effect of settling a bet against one
// version of its outcome's result.
func SettleKey(betID string, resultVersion int) string {
	return fmt.Sprintf("settle:%s:v%d", betID, resultVersion)
}

// ReverseKey identifies the reversal of the effect written under SettleKey
// for the same version.
func ReverseKey(betID string, resultVersion int) string {
	return fmt.Sprintf("reverse:%s:v%d", betID, resultVersion)
}

func settledVersion(betID, key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "settle:"+betID+":v")
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Payout is stake times odds, rounded to cents
func Payout(stake, odds decimal.Decimal) decimal.Decimal {
	return stake.Mul(odds).Round(2)
}

type SettlementProcessorImpl struct {
	catalog   repository.CatalogRepository
	ledger    LedgerService
	publisher repository.SettlementPublisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
	now       func() time.Time
}

func NewSettlementProcessor(
	catalog repository.CatalogRepository,
	ledger LedgerService,
	publisher repository.SettlementPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) SettlementProcessor {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &SettlementProcessorImpl{
		catalog:   catalog,
		ledger:    ledger,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		// claim tokens round-trip through timestamptz, which keeps microseconds
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func validateSettlement(bet *model.Bet, outcome *model.Outcome) error {
	if bet.OutcomeID != outcome.ID {
		return fmt.Errorf("%w: bet %s is not on outcome %s", model.ErrInvalidRequest, bet.ID, outcome.ID)
	}
	if !outcome.IsResolved() {
		return fmt.Errorf("%w: outcome %s is %s", model.ErrOutcomeUnresolved, outcome.ID, outcome.Result)
	}
	if outcome.Odds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: outcome %s has odds %s", model.ErrInvalidOdds, outcome.ID, outcome.Odds)
	}
	return nil
}

// Settle claims the bet and applies the outcome's result to the ledger.
// Losing the claim is not an error: the bet is reported as already settling
// or already settled. A settled bet whose result version lags the outcome is
// reopened, its earlier effect reversed, and settled again.
func (p *SettlementProcessorImpl) Settle(ctx context.Context, bet *model.Bet, outcome *model.Outcome) (model.SettlementOutcome, error) {
	if err := validateSettlement(bet, outcome); err != nil {
		return "", err
	}

	claimedAt := p.now()
	switch bet.Status {
	case model.BetPending:
		ok, err := p.catalog.ClaimBet(ctx, bet.ID, claimedAt)
		if err != nil {
			return "", fmt.Errorf("claim bet: %w", err)
		}
		if !ok {
			return p.lostClaim(ctx, bet.ID)
		}
		return p.finish(ctx, bet, outcome, claimedAt, model.OutcomeSettled)

	case model.BetSettled:
		if bet.SettledResultVersion == outcome.ResultVersion {
			return model.OutcomeAlreadySettled, nil
		}
		ok, err := p.catalog.ReopenSettledBet(ctx, bet.ID, bet.SettledResultVersion, claimedAt)
		if err != nil {
			return "", fmt.Errorf("reopen bet: %w", err)
		}
		if !ok {
			return p.lostClaim(ctx, bet.ID)
		}
		p.logger.Info().
			Str("bet_id", bet.ID).
			Int("settled_version", bet.SettledResultVersion).
			Int("result_version", outcome.ResultVersion).
			Msg("reopened bet for correction")
		return p.finish(ctx, bet, outcome, claimedAt, model.OutcomeResettled)

	case model.BetSettling:
		return model.OutcomeAlreadySettling, nil

	default:
		return "", fmt.Errorf("%w: bet %s has status %q", model.ErrInvalidState, bet.ID, bet.Status)
	}
}

// lostClaim reports what the winner of a claim race left behind
func (p *SettlementProcessorImpl) lostClaim(ctx context.Context, betID string) (model.SettlementOutcome, error) {
	current, err := p.catalog.GetBet(ctx, betID)
	if err != nil {
		return "", fmt.Errorf("get bet: %w", err)
	}
	if current.Status == model.BetSettled {
		return model.OutcomeAlreadySettled, nil
	}
	return model.OutcomeAlreadySettling, nil
}

// Resume continues a bet from wherever it stopped. A SETTLING bet is
// finished under its existing claim; the ledger keys make repeating the
// effect harmless.
func (p *SettlementProcessorImpl) Resume(ctx context.Context, betID string) (model.SettlementOutcome, error) {
	bet, err := p.catalog.GetBet(ctx, betID)
	if err != nil {
		return "", fmt.Errorf("get bet: %w", err)
	}
	outcome, err := p.catalog.GetOutcome(ctx, bet.OutcomeID)
	if err != nil {
		return "", fmt.Errorf("get outcome: %w", err)
	}

	if bet.Status != model.BetSettling {
		return p.Settle(ctx, bet, outcome)
	}
	if err := validateSettlement(bet, outcome); err != nil {
		return "", err
	}
	if bet.ClaimedAt == nil {
		return "", fmt.Errorf("%w: bet %s has no claim", model.ErrBetNotClaimed, bet.ID)
	}
	return p.finish(ctx, bet, outcome, *bet.ClaimedAt, resumedOutcome(bet))
}

func resumedOutcome(bet *model.Bet) model.SettlementOutcome {
	if bet.SettledResultVersion > 0 {
		return model.OutcomeResettled
	}
	return model.OutcomeSettled
}

// ResumeStale takes over bets whose claim is older than cutoff and finishes them
func (p *SettlementProcessorImpl) ResumeStale(ctx context.Context, cutoff time.Time, limit int) (*model.SettlementReport, error) {
	bets, err := p.catalog.ListStaleSettlingBets(ctx, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale bets: %w", err)
	}

	report := &model.SettlementReport{}
	for _, bet := range bets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := p.resumeStale(ctx, bet, cutoff)
		if err != nil {
			report.BetsFailed++
			p.metrics.Error("resume_stale")
			p.logger.Error().Err(err).Str("bet_id", bet.ID).Msg("failed to resume stale bet")
			continue
		}
		if result.Applied() {
			report.BetsSettled++
		}
	}
	return report, nil
}

func (p *SettlementProcessorImpl) resumeStale(ctx context.Context, bet *model.Bet, cutoff time.Time) (model.SettlementOutcome, error) {
	outcome, err := p.catalog.GetOutcome(ctx, bet.OutcomeID)
	if err != nil {
		return "", fmt.Errorf("get outcome: %w", err)
	}
	if err := validateSettlement(bet, outcome); err != nil {
		return "", err
	}

	claimedAt := p.now()
	ok, err := p.catalog.ReclaimStaleBet(ctx, bet.ID, cutoff, claimedAt)
	if err != nil {
		return "", fmt.Errorf("reclaim bet: %w", err)
	}
	if !ok {
		return p.lostClaim(ctx, bet.ID)
	}

	p.logger.Warn().
		Str("bet_id", bet.ID).
		Time("previous_claim", derefTime(bet.ClaimedAt)).
		Msg("reclaimed stale bet")
	return p.finish(ctx, bet, outcome, claimedAt, resumedOutcome(bet))
}

// ResettleOutcome brings every settled bet of the outcome up to its current
// result version
func (p *SettlementProcessorImpl) ResettleOutcome(ctx context.Context, outcomeID string) (*model.SettlementReport, error) {
	outcome, err := p.catalog.GetOutcome(ctx, outcomeID)
	if err != nil {
		return nil, fmt.Errorf("get outcome: %w", err)
	}
	bets, err := p.catalog.ListBetsOf(ctx, outcomeID)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}

	report := &model.SettlementReport{}
	for _, bet := range bets {
		if bet.Status != model.BetSettled || bet.SettledResultVersion == outcome.ResultVersion {
			continue
		}
		result, err := p.Settle(ctx, bet, outcome)
		if err != nil {
			report.BetsFailed++
			p.metrics.Error("resettle")
			p.logger.Error().Err(err).Str("bet_id", bet.ID).Msg("failed to resettle bet")
			continue
		}
		if result.Applied() {
			report.BetsSettled++
		}
	}
	return report, nil
}

// finish applies the ledger effect and marks the bet SETTLED under the
// given claim. Any failure leaves the bet SETTLING.
func (p *SettlementProcessorImpl) finish(ctx context.Context, bet *model.Bet, outcome *model.Outcome, claimedAt time.Time, kind model.SettlementOutcome) (model.SettlementOutcome, error) {
	trans, err := p.apply(ctx, bet, outcome)
	if err != nil {
		return "", err
	}

	settlement := model.BetSettlement{
		ClaimedAt:     claimedAt,
		Result:        outcome.Result,
		ResultVersion: outcome.ResultVersion,
		SettledAt:     p.now(),
	}
	if trans != nil {
		id := trans.ID
		settlement.TransactionID = &id
	}

	ok, err := p.catalog.MarkBetSettled(ctx, bet.ID, settlement)
	if err != nil {
		return "", fmt.Errorf("mark bet settled: %w", err)
	}
	if !ok {
		p.logger.Warn().Str("bet_id", bet.ID).Msg("bet claim taken over before it was marked settled")
		return p.lostClaim(ctx, bet.ID)
	}

	credited := decimal.Zero
	if trans != nil {
		credited = trans.Amount
	}
	p.metrics.BetSettled(kind.String())
	p.logger.Info().
		Str("bet_id", bet.ID).
		Str("user_id", bet.UserID).
		Str("result", outcome.Result.String()).
		Int("result_version", outcome.ResultVersion).
		Str("stake", bet.Stake.StringFixed(2)).
		Str("amount", credited.StringFixed(2)).
		Str("outcome", kind.String()).
		Msg("bet settled")

	p.publish(ctx, bet, outcome, settlement, credited, kind)
	return p.catchUp(ctx, bet, outcome, kind)
}

// catchUp settles the bet again when its outcome was corrected while the bet
// was SETTLING. The resolver cannot reopen a bet in that state, so the runner
// that holds the claim picks the correction up itself.
func (p *SettlementProcessorImpl) catchUp(ctx context.Context, bet *model.Bet, settledAgainst *model.Outcome, kind model.SettlementOutcome) (model.SettlementOutcome, error) {
	latest, err := p.catalog.GetOutcome(ctx, settledAgainst.ID)
	if err != nil {
		// the scheduler's lagging-bet sweep finds it later
		p.logger.Warn().Err(err).Str("bet_id", bet.ID).Msg("failed to recheck outcome after settlement")
		return kind, nil
	}
	if latest.ResultVersion <= settledAgainst.ResultVersion {
		return kind, nil
	}

	p.logger.Info().
		Str("bet_id", bet.ID).
		Int("settled_version", settledAgainst.ResultVersion).
		Int("result_version", latest.ResultVersion).
		Msg("outcome corrected during settlement")

	settled := *bet
	settled.Status = model.BetSettled
	settled.SettledResultVersion = settledAgainst.ResultVersion
	result, err := p.Settle(ctx, &settled, latest)
	if err != nil {
		return "", fmt.Errorf("settle correction: %w", err)
	}
	if result.Applied() {
		return model.OutcomeResettled, nil
	}
	return kind, nil
}

// apply reverses effects written for other result versions, then writes
// the effect of the current one. Every append is keyed, so running it
// again changes nothing.
func (p *SettlementProcessorImpl) apply(ctx context.Context, bet *model.Bet, outcome *model.Outcome) (*model.Transaction, error) {
	prior, err := p.ledger.GetTransactionsByBet(ctx, bet.ID)
	if err != nil {
		return nil, fmt.Errorf("get bet transactions: %w", err)
	}
	if err := p.reverseSuperseded(ctx, bet, prior, outcome.ResultVersion); err != nil {
		return nil, err
	}

	var (
		txType model.TransactionType
		amount decimal.Decimal
	)
	switch outcome.Result {
	case model.ResultWon:
		txType, amount = model.TypePayout, Payout(bet.Stake, outcome.Odds)
	case model.ResultVoid:
		txType, amount = model.TypeRefund, bet.Stake
	case model.ResultLost:
		return nil, nil
	case model.ResultPending:
		return nil, fmt.Errorf("%w: outcome %s", model.ErrOutcomeUnresolved, outcome.ID)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidResult, outcome.Result)
	}

	trans, err := p.ledger.Append(ctx, &model.AppendRequest{
		UserID:         bet.UserID,
		Type:           txType,
		Amount:         amount,
		Status:         model.StatusSuccess,
		Category:       model.CategoryBetSettlement,
		Description:    fmt.Sprintf("bet %s %s at v%d", bet.ID, outcome.Result, outcome.ResultVersion),
		IdempotencyKey: SettleKey(bet.ID, outcome.ResultVersion),
		BetID:          bet.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("append settlement: %w", err)
	}
	return trans, nil
}

// reverseSuperseded writes an equal and opposite withdrawal for every
// settlement credit of the bet made under a version other than current.
func (p *SettlementProcessorImpl) reverseSuperseded(ctx context.Context, bet *model.Bet, prior []*model.Transaction, current int) error {
	reversed := make(map[string]bool)
	for _, t := range prior {
		if t.IdempotencyKey != nil && t.Category == model.CategoryBetCorrection {
			reversed[*t.IdempotencyKey] = true
		}
	}

	for _, t := range prior {
		if t.Category != model.CategoryBetSettlement || t.Status != model.StatusSuccess || t.IdempotencyKey == nil {
			continue
		}
		version, ok := settledVersion(bet.ID, *t.IdempotencyKey)
		if !ok || version == current {
			continue
		}
		key := ReverseKey(bet.ID, version)
		if reversed[key] {
			continue
		}

		_, err := p.ledger.Append(ctx, &model.AppendRequest{
			UserID:               bet.UserID,
			Type:                 model.TypeWithdrawal,
			Amount:               t.Amount,
			Status:               model.StatusSuccess,
			Category:             model.CategoryBetCorrection,
			Description:          fmt.Sprintf("reverse %s of bet %s from v%d", t.Type, bet.ID, version),
			IdempotencyKey:       key,
			BetID:                bet.ID,
			AllowNegativeBalance: true,
		})
		if err != nil {
			return fmt.Errorf("append reversal: %w", err)
		}
		p.logger.Info().
			Str("bet_id", bet.ID).
			Str("reversed_transaction_id", t.ID).
			Str("amount", t.Amount.StringFixed(2)).
			Int("version", version).
			Msg("settlement reversed")
	}
	return nil
}

func (p *SettlementProcessorImpl) publish(ctx context.Context, bet *model.Bet, outcome *model.Outcome, settlement model.BetSettlement, credited decimal.Decimal, kind model.SettlementOutcome) {
	event := events.BetSettled{
		BetID:         bet.ID,
		UserID:        bet.UserID,
		OutcomeID:     outcome.ID,
		Result:        outcome.Result.String(),
		ResultVersion: outcome.ResultVersion,
		Outcome:       kind.String(),
		Stake:         bet.Stake.StringFixed(2),
		Amount:        credited.StringFixed(2),
		SettledAt:     settlement.SettledAt,
	}
	if settlement.TransactionID != nil {
		event.TransactionID = *settlement.TransactionID
	}
	if err := p.publisher.PublishBetSettled(ctx, event); err != nil {
		p.metrics.Error("publish")
		p.logger.Warn().Err(err).Str("bet_id", bet.ID).Msg("failed to publish bet settled event")
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
