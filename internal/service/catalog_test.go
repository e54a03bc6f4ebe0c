package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"sportsbook-settlement/internal/model"
	mocks "sportsbook-settlement/mocks/repository"
	svcmocks "sportsbook-settlement/mocks/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOutcome_OddsMustExceedOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	book, _ := f.book(t)
	details, err := f.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, details.Events, 1)
	eventID := details.Events[0].ID

	for _, odds := range []string{"1", "0.5", "-2", "abc"} {
		_, err := f.catalog.CreateOutcome(ctx, eventID, &model.CreateOutcomeRequest{Name: "x", Odds: odds})
		assert.ErrorIs(t, err, model.ErrInvalidOdds, odds)
	}
}

func TestGetBook_ReturnsTreeInDisplayOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	book, _ := f.book(t)
	details, err := f.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	eventID := details.Events[0].ID

	for _, o := range []struct {
		name  string
		order int
	}{{"away", 2}, {"home", 0}, {"draw", 1}} {
		_, err := f.catalog.CreateOutcome(ctx, eventID, &model.CreateOutcomeRequest{Name: o.name, Odds: "2.00", Order: o.order})
		require.NoError(t, err)
	}

	details, err = f.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, details.Events[0].Outcomes, 3)
	assert.Equal(t, "home", details.Events[0].Outcomes[0].Name)
	assert.Equal(t, "draw", details.Events[0].Outcomes[1].Name)
	assert.Equal(t, "away", details.Events[0].Outcomes[2].Name)
}

func TestListBooks_FiltersByStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.book(t)
	completed, outcomes := f.book(t, "2.00")
	f.resolve(t, outcomes[0].ID, model.ResultWon)
	_, err := f.scheduler.CheckAndSettleCompletedBooks(ctx)
	require.NoError(t, err)

	books, err := f.catalog.ListBooks(ctx, "completed")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, completed.ID, books[0].ID)

	all, err := f.catalog.ListBooks(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.catalog.ListBooks(ctx, "closed")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestCompletedBook_IsFrozen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	book, outcomes := f.book(t, "2.00")
	f.resolve(t, outcomes[0].ID, model.ResultWon)
	_, err := f.scheduler.CheckAndSettleCompletedBooks(ctx)
	require.NoError(t, err)

	_, err = f.catalog.CreateEvent(ctx, book.ID, &model.CreateEventRequest{Name: "late"})
	assert.ErrorIs(t, err, model.ErrBookNotActive)

	_, err = f.catalog.PlaceBet(ctx, "user-1", outcomes[0].ID, &model.PlaceBetRequest{Stake: "10"})
	assert.ErrorIs(t, err, model.ErrOutcomeClosed)

	ok, err := f.store.SetBookStatus(ctx, book.ID, model.BookActive, model.BookCompleted)
	require.NoError(t, err)
	assert.False(t, ok, "COMPLETED must not be claimed again")
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "5")
	_, outcomes := f.book(t, "2.00")

	_, err := f.catalog.PlaceBet(ctx, "user-1", outcomes[0].ID, &model.PlaceBetRequest{Stake: "10"})

	require.ErrorIs(t, err, model.ErrInsufficientBalance)
	bets, err := f.store.ListBetsOf(ctx, outcomes[0].ID)
	require.NoError(t, err)
	assert.Empty(t, bets)
	assert.Equal(t, "5.00", f.balance(t, "user-1"))
}

func TestPlaceBet_InvalidStake(t *testing.T) {
	f := newFixture(t)
	_, outcomes := f.book(t, "2.00")

	for _, stake := range []string{"0", "-1", "ten"} {
		_, err := f.catalog.PlaceBet(context.Background(), "user-1", outcomes[0].ID, &model.PlaceBetRequest{Stake: stake})
		assert.ErrorIs(t, err, model.ErrInvalidAmount, stake)
	}
}

func TestPlaceBet_ReplayReturnsSameBet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")
	req := &model.PlaceBetRequest{Stake: "40", IdempotencyKey: "slip-1"}

	first, err := f.catalog.PlaceBet(ctx, "user-1", outcomes[0].ID, req)
	require.NoError(t, err)
	second, err := f.catalog.PlaceBet(ctx, "user-1", outcomes[0].ID, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "60.00", f.balance(t, "user-1"))
}

func TestPlaceBet_RefundsStakeWhenBetCannotBeStored(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockLedger := svcmocks.NewLedgerService(t)

	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(&model.Outcome{
		ID: "outcome-1", EventID: "event-1", Odds: decimal.RequireFromString("2.00"), Result: model.ResultPending,
	}, nil)
	mockCatalog.On("GetEvent", ctx, "event-1").Return(&model.Event{ID: "event-1", BookID: "book-1"}, nil)
	mockCatalog.On("GetBook", ctx, "book-1").Return(&model.Book{ID: "book-1", Status: model.BookActive}, nil)
	mockLedger.On("Append", ctx, mock.MatchedBy(func(req *model.AppendRequest) bool {
		return req.Type == model.TypeStake && req.Category == model.CategoryBetStake
	})).Return(func(ctx context.Context, req *model.AppendRequest) (*model.Transaction, error) {
		betID := req.BetID
		return &model.Transaction{ID: "stake-tx", UserID: req.UserID, Type: req.Type, Amount: req.Amount, BetID: &betID}, nil
	})
	mockCatalog.On("CreateBet", ctx, mock.Anything).Return(errors.New("connection reset"))
	mockLedger.On("Append", ctx, mock.MatchedBy(func(req *model.AppendRequest) bool {
		return req.Type == model.TypeRefund &&
			req.Amount.Equal(decimal.NewFromInt(25)) &&
			req.IdempotencyKey == "stake-refund:"+req.BetID
	})).Return(&model.Transaction{ID: "refund-tx"}, nil)

	catalog := NewCatalogService(mockCatalog, mockLedger, zerolog.Nop())

	_, err := catalog.PlaceBet(ctx, "user-1", "outcome-1", &model.PlaceBetRequest{Stake: "25"})

	require.Error(t, err)
	mockLedger.AssertNumberOfCalls(t, "Append", 2)
}

func TestPlaceBet_OutcomeResolvedBeforeInsert(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	_, outcomes := f.book(t, "2.00")

	// the result lands after the open check and the stake debit
	flaky := newFlakyCatalog(f.store)
	flaky.beforeCreateBet = func(ctx context.Context, bet *model.Bet) {
		ok, err := f.store.SetOutcomeResult(ctx, bet.OutcomeID, 0, model.ResultWon)
		require.NoError(t, err)
		require.True(t, ok)
	}
	catalog := NewCatalogService(flaky, f.ledger, zerolog.Nop())

	_, err := catalog.PlaceBet(ctx, "user-1", outcomes[0].ID, &model.PlaceBetRequest{Stake: "40", IdempotencyKey: "slip-1"})

	require.ErrorIs(t, err, model.ErrOutcomeClosed)
	bets, err := f.store.ListBetsOf(ctx, outcomes[0].ID)
	require.NoError(t, err)
	assert.Empty(t, bets)
	assert.Equal(t, "100.00", f.balance(t, "user-1"))

	transactions, err := f.ledger.GetTransactionsByUser(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	types := make([]model.TransactionType, 0, len(transactions))
	for _, tr := range transactions {
		types = append(types, tr.Type)
	}
	assert.Contains(t, types, model.TypeStake)
	assert.Contains(t, types, model.TypeRefund)
}

func TestCreateBet_RejectsClosedOutcomesAndBooks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.deposit(t, "user-1", "100")
	book, outcomes := f.book(t, "2.00", "3.00")

	ok, err := f.store.SetOutcomeResult(ctx, outcomes[0].ID, 0, model.ResultLost)
	require.NoError(t, err)
	require.True(t, ok)
	err = f.store.CreateBet(ctx, &model.Bet{
		ID: "bet-1", UserID: "user-1", OutcomeID: outcomes[0].ID, Stake: decimal.NewFromInt(10), Status: model.BetPending,
	})
	assert.ErrorIs(t, err, model.ErrOutcomeClosed)

	ok, err = f.store.SetBookStatus(ctx, book.ID, model.BookActive, model.BookCompleted)
	require.NoError(t, err)
	require.True(t, ok)
	err = f.store.CreateBet(ctx, &model.Bet{
		ID: "bet-2", UserID: "user-1", OutcomeID: outcomes[1].ID, Stake: decimal.NewFromInt(10), Status: model.BetPending,
	})
	assert.ErrorIs(t, err, model.ErrBookNotActive)
}

// Test_ConcurrentLedger_BalanceIsFold verifies:
// - Random concurrent deposits and withdrawals
// - The balance never goes below zero through user debits
// - The balance equals the fold over the successful transactions
func Test_ConcurrentLedger_BalanceIsFold(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const numOps = 200

	f.deposit(t, "user-1", "50")

	barrier := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numOps)
	for i := 0; i < numOps; i++ {
		txType := model.TypeDeposit
		if rand.Intn(2) == 0 {
			txType = model.TypeWithdrawal
		}
		amount := decimal.NewFromInt(int64(rand.Intn(20) + 1))

		go func() {
			defer wg.Done()
			<-barrier

			_, err := f.ledger.Append(ctx, &model.AppendRequest{
				UserID: "user-1",
				Type:   txType,
				Amount: amount,
				Status: model.StatusSuccess,
			})
			if err != nil {
				assert.ErrorIs(t, err, model.ErrInsufficientBalance)
			}
		}()
	}

	close(barrier)
	wg.Wait()

	transactions, err := f.ledger.GetTransactionsByUser(ctx, "user-1", numOps+1, 0)
	require.NoError(t, err)

	fold := decimal.Zero
	for _, tr := range transactions {
		if tr.Type.IsCredit() {
			fold = fold.Add(tr.Amount)
		} else {
			fold = fold.Sub(tr.Amount)
		}
	}

	balance, err := f.ledger.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(fold), "balance %s != fold %s", balance, fold)
	assert.False(t, balance.IsNegative())
}
