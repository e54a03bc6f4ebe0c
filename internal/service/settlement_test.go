package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"sportsbook-settlement/internal/events"
	"sportsbook-settlement/internal/model"
	mocks "sportsbook-settlement/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayout_RoundsToCents(t *testing.T) {
	assert.Equal(t, "250.00", Payout(decimal.NewFromInt(100), decimal.RequireFromString("2.5")).StringFixed(2))
	assert.Equal(t, "3.33", Payout(decimal.RequireFromString("1.11"), decimal.RequireFromString("3.003")).StringFixed(2))
}

func TestSettleKeys(t *testing.T) {
	assert.Equal(t, "settle:bet-1:v2", SettleKey("bet-1", 2))
	assert.Equal(t, "reverse:bet-1:v2", ReverseKey("bet-1", 2))

	v, ok := settledVersion("bet-1", SettleKey("bet-1", 12))
	require.True(t, ok)
	assert.Equal(t, 12, v)

	_, ok = settledVersion("bet-1", SettleKey("bet-2", 1))
	assert.False(t, ok)
	_, ok = settledVersion("bet-1", "stake:user:abc")
	assert.False(t, ok)
}

func TestSettle_Won_CreditsStakeTimesOdds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.50")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	assert.Equal(t, "0.00", f.balance(t, "user-1"))

	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)

	result, err := f.processor.Settle(ctx, bet, outcome)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSettled, result)
	assert.Equal(t, "250.00", f.balance(t, "user-1"))

	settled := f.getBet(t, bet.ID)
	assert.Equal(t, model.BetSettled, settled.Status)
	assert.Equal(t, 1, settled.SettledResultVersion)
	require.NotNil(t, settled.SettlementTransactionID)

	transactions, err := f.ledger.GetTransactionsByBet(ctx, bet.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	payout := transactions[1]
	assert.Equal(t, model.TypePayout, payout.Type)
	assert.Equal(t, model.CategoryBetSettlement, payout.Category)
	assert.Equal(t, SettleKey(bet.ID, 1), *payout.IdempotencyKey)
	assert.Equal(t, *settled.SettlementTransactionID, payout.ID)
}

func TestSettle_Void_RefundsStake(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "3.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "50")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultVoid)

	result, err := f.processor.Settle(ctx, bet, outcome)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSettled, result)
	assert.Equal(t, "100.00", f.balance(t, "user-1"))

	transactions, err := f.ledger.GetTransactionsByBet(ctx, bet.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, model.TypeRefund, transactions[1].Type)
	assert.Equal(t, "50.00", transactions[1].Amount.StringFixed(2))
}

func TestSettle_Lost_WritesNoTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "40")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultLost)

	result, err := f.processor.Settle(ctx, bet, outcome)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSettled, result)
	assert.Equal(t, "60.00", f.balance(t, "user-1"))

	settled := f.getBet(t, bet.ID)
	assert.Equal(t, model.BetSettled, settled.Status)
	assert.Nil(t, settled.SettlementTransactionID)
	require.NotNil(t, settled.SettledResult)
	assert.Equal(t, model.ResultLost, *settled.SettledResult)

	transactions, err := f.ledger.GetTransactionsByBet(ctx, bet.ID)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestSettle_Twice_SecondIsAlreadySettled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)

	_, err := f.processor.Settle(ctx, bet, outcome)
	require.NoError(t, err)

	// stale snapshot still says PENDING
	result, err := f.processor.Settle(ctx, bet, outcome)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeAlreadySettled, result)

	result, err = f.processor.Settle(ctx, f.getBet(t, bet.ID), outcome)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeAlreadySettled, result)

	assert.Equal(t, "200.00", f.balance(t, "user-1"))
}

func TestSettle_UnresolvedOutcome(t *testing.T) {
	f := newFixture(t)

	f.deposit(t, "user-1", "10")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "10")

	_, err := f.processor.Settle(context.Background(), bet, outcomes[0])

	require.ErrorIs(t, err, model.ErrOutcomeUnresolved)
	assert.Equal(t, model.BetPending, f.getBet(t, bet.ID).Status)
}

func TestSettle_BetOfAnotherOutcome(t *testing.T) {
	f := newFixture(t)

	f.deposit(t, "user-1", "10")
	_, outcomes := f.book(t, "2.00", "3.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "10")
	other := f.resolve(t, outcomes[1].ID, model.ResultWon)

	_, err := f.processor.Settle(context.Background(), bet, other)

	require.ErrorIs(t, err, model.ErrInvalidRequest)
}

// Test_ConcurrentSettle_PaysOnce verifies:
// - Many callers settling the same bet at once
// - Exactly one applies the payout
// - The rest see the bet as settling or settled
func Test_ConcurrentSettle_PaysOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const numCallers = 25

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.50")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)

	barrier := make(chan struct{})
	results := make(chan model.SettlementOutcome, numCallers)
	errs := make(chan error, numCallers)

	var wg sync.WaitGroup
	wg.Add(numCallers)
	for i := 0; i < numCallers; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			result, err := f.processor.Settle(ctx, bet, outcome)
			if err != nil {
				errs <- err
				return
			}
			results <- result
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	settled := 0
	for result := range results {
		switch result {
		case model.OutcomeSettled:
			settled++
		case model.OutcomeAlreadySettled, model.OutcomeAlreadySettling:
		default:
			t.Errorf("unexpected result %q", result)
		}
	}

	assert.Equal(t, 1, settled, "exactly one caller should apply the settlement")
	assert.Equal(t, "250.00", f.balance(t, "user-1"), "payout should be credited once")
}

func TestCorrection_ReversesAndResettles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.50")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)

	_, err := f.processor.Settle(ctx, bet, outcome)
	require.NoError(t, err)
	assert.Equal(t, "250.00", f.balance(t, "user-1"))

	// WON -> LOST takes the payout back
	resolution, err := f.resolver.SetResult(ctx, outcomes[0].ID, "LOST")
	require.NoError(t, err)
	assert.True(t, resolution.Correction)
	require.NotNil(t, resolution.Resettled)
	assert.Equal(t, 1, resolution.Resettled.BetsSettled)
	assert.Equal(t, "0.00", f.balance(t, "user-1"))

	settled := f.getBet(t, bet.ID)
	assert.Equal(t, model.BetSettled, settled.Status)
	assert.Equal(t, 2, settled.SettledResultVersion)
	assert.Equal(t, model.ResultLost, *settled.SettledResult)

	// LOST -> WON pays again under the new version
	_, err = f.resolver.SetResult(ctx, outcomes[0].ID, "WON")
	require.NoError(t, err)
	assert.Equal(t, "250.00", f.balance(t, "user-1"))

	transactions, err := f.ledger.GetTransactionsByBet(ctx, bet.ID)
	require.NoError(t, err)
	keys := make([]string, 0, len(transactions))
	for _, tr := range transactions {
		if tr.IdempotencyKey != nil {
			keys = append(keys, *tr.IdempotencyKey)
		}
	}
	assert.Contains(t, keys, SettleKey(bet.ID, 1))
	assert.Contains(t, keys, ReverseKey(bet.ID, 1))
	assert.Contains(t, keys, SettleKey(bet.ID, 3))
	assert.NotContains(t, keys, ReverseKey(bet.ID, 3))
}

func TestCorrection_WonToVoid_LeavesRefundOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)

	_, err := f.processor.Settle(ctx, bet, outcome)
	require.NoError(t, err)

	_, err = f.resolver.SetResult(ctx, outcomes[0].ID, "VOID")
	require.NoError(t, err)

	assert.Equal(t, "100.00", f.balance(t, "user-1"))
}

func TestCorrection_ReversalMayOverdraw(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)
	_, err := f.processor.Settle(ctx, bet, outcome)
	require.NoError(t, err)

	// the user spends the payout before the correction lands
	_, err = f.ledger.Append(ctx, &model.AppendRequest{
		UserID: "user-1",
		Type:   model.TypeWithdrawal,
		Amount: decimal.NewFromInt(200),
		Status: model.StatusSuccess,
	})
	require.NoError(t, err)

	_, err = f.resolver.SetResult(ctx, outcomes[0].ID, "LOST")
	require.NoError(t, err)

	assert.Equal(t, "-200.00", f.balance(t, "user-1"))
}

func TestCorrection_WhileBetIsSettling_IsApplied(t *testing.T) {
	ctx := context.Background()

	hooked := &hookedLedger{}
	f := newFixtureWith(t, func(inner LedgerService) LedgerService {
		hooked.LedgerService = inner
		return hooked
	}, SchedulerOptions{Concurrency: 1})

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	f.resolve(t, outcomes[0].ID, model.ResultWon)

	// WON -> LOST lands after the bet is claimed, before its payout is written
	hooked.key = SettleKey(bet.ID, 1)
	hooked.before = func(ctx context.Context) {
		resolution, err := f.resolver.SetResult(ctx, outcomes[0].ID, "LOST")
		if assert.NoError(t, err) && assert.NotNil(t, resolution.Resettled) {
			// the bet is SETTLING, so the resolver cannot take it
			assert.Zero(t, resolution.Resettled.BetsSettled)
		}
	}

	report, err := f.scheduler.CheckAndSettleCompletedBooks(ctx)

	require.NoError(t, err)
	assert.Equal(t, model.SettlementReport{BooksSettled: 1, BetsSettled: 1}, *report)
	assert.Equal(t, "0.00", f.balance(t, "user-1"))

	settled := f.getBet(t, bet.ID)
	assert.Equal(t, model.BetSettled, settled.Status)
	assert.Equal(t, 2, settled.SettledResultVersion)
	assert.Equal(t, model.ResultLost, *settled.SettledResult)

	transactions, err := f.ledger.GetTransactionsByBet(ctx, bet.ID)
	require.NoError(t, err)
	keys := make([]string, 0, len(transactions))
	for _, tr := range transactions {
		if tr.IdempotencyKey != nil {
			keys = append(keys, *tr.IdempotencyKey)
		}
	}
	assert.Contains(t, keys, SettleKey(bet.ID, 1))
	assert.Contains(t, keys, ReverseKey(bet.ID, 1))
}

func TestScheduler_ResettlesBetsBehindTheirOutcome(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	f.resolve(t, outcomes[0].ID, model.ResultWon)

	_, err := f.scheduler.CheckAndSettleCompletedBooks(ctx)
	require.NoError(t, err)
	require.Equal(t, "200.00", f.balance(t, "user-1"))

	// the result was corrected but the process died before resettling
	ok, err := f.store.SetOutcomeResult(ctx, outcomes[0].ID, 1, model.ResultLost)
	require.NoError(t, err)
	require.True(t, ok)

	report, err := f.scheduler.CheckAndSettleCompletedBooks(ctx)

	require.NoError(t, err)
	assert.Equal(t, model.SettlementReport{BetsSettled: 1}, *report)
	assert.Equal(t, "0.00", f.balance(t, "user-1"))
	assert.Equal(t, 2, f.getBet(t, bet.ID).SettledResultVersion)

	// nothing is left behind for the next run
	report, err = f.scheduler.CheckAndSettleCompletedBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SettlementReport{}, *report)
}

func TestResume_FinishesUnderExistingClaim(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	f.resolve(t, outcomes[0].ID, model.ResultWon)

	// a runner claimed the bet and died before writing anything
	ok, err := f.store.ClaimBet(ctx, bet.ID, time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	require.True(t, ok)

	result, err := f.processor.Resume(ctx, bet.ID)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSettled, result)
	assert.Equal(t, model.BetSettled, f.getBet(t, bet.ID).Status)
	assert.Equal(t, "200.00", f.balance(t, "user-1"))
}

func TestResumeStale_ReclaimsOldClaims(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	stale := f.bet(t, "user-1", outcomes[0].ID, "30")
	fresh := f.bet(t, "user-1", outcomes[0].ID, "30")
	f.resolve(t, outcomes[0].ID, model.ResultWon)

	ok, err := f.store.ClaimBet(ctx, stale.ID, time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.store.ClaimBet(ctx, fresh.ID, time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	require.True(t, ok)

	report, err := f.processor.ResumeStale(ctx, time.Now().Add(-time.Minute), 10)

	require.NoError(t, err)
	assert.Equal(t, 1, report.BetsSettled)
	assert.Equal(t, 0, report.BetsFailed)
	assert.Equal(t, model.BetSettled, f.getBet(t, stale.ID).Status)
	assert.Equal(t, model.BetSettling, f.getBet(t, fresh.ID).Status)
	assert.Equal(t, "100.00", f.balance(t, "user-1"))
}

func TestSettle_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.50")
	bet := f.bet(t, "user-1", outcomes[0].ID, "100")
	outcome := f.resolve(t, outcomes[0].ID, model.ResultWon)

	mockPublisher := mocks.NewSettlementPublisher(t)
	mockPublisher.On("PublishBetSettled", ctx, mock.MatchedBy(func(e events.BetSettled) bool {
		return e.BetID == bet.ID &&
			e.UserID == "user-1" &&
			e.Result == "WON" &&
			e.ResultVersion == 1 &&
			e.Outcome == "settled" &&
			e.Stake == "100.00" &&
			e.Amount == "250.00" &&
			e.TransactionID != ""
	})).Return(assert.AnError)

	processor := NewSettlementProcessor(f.store, f.ledger, mockPublisher, nil, zerolog.Nop())

	// a publish failure does not undo the settlement
	result, err := processor.Settle(ctx, bet, outcome)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSettled, result)
	assert.Equal(t, "250.00", f.balance(t, "user-1"))
}
