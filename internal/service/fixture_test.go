package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"sportsbook-settlement/internal/events"
	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fixture wires every service over one in-memory store
type fixture struct {
	store     *memory.Store
	ledger    LedgerService
	processor SettlementProcessor
	resolver  OutcomeResolver
	detector  CompletionDetector
	scheduler SettlementScheduler
	catalog   CatalogService
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, nil, SchedulerOptions{Concurrency: 4, RetryAttempts: 2, RetryBackoff: time.Millisecond})
}

// newFixtureWith lets a test wrap the ledger the settlement processor sees
func newFixtureWith(t *testing.T, wrap func(LedgerService) LedgerService, opts SchedulerOptions) *fixture {
	t.Helper()
	logger := zerolog.Nop()
	store := memory.NewStore()

	ledger := NewLedgerService(store, store, store, nil, nil, logger)
	settlementLedger := ledger
	if wrap != nil {
		settlementLedger = wrap(ledger)
	}
	processor := NewSettlementProcessor(store, settlementLedger, events.NopPublisher{}, nil, logger)
	detector := NewCompletionDetector(store, nil, logger)

	return &fixture{
		store:     store,
		ledger:    ledger,
		processor: processor,
		resolver:  NewOutcomeResolver(store, processor, nil, logger),
		detector:  detector,
		scheduler: NewSettlementScheduler(detector, processor, store, opts, nil, logger),
		catalog:   NewCatalogService(store, ledger, logger),
	}
}

func (f *fixture) deposit(t *testing.T, userID, amount string) {
	t.Helper()
	_, err := f.ledger.Append(context.Background(), &model.AppendRequest{
		UserID:   userID,
		Type:     model.TypeDeposit,
		Amount:   decimal.RequireFromString(amount),
		Status:   model.StatusSuccess,
		Category: "manual",
	})
	require.NoError(t, err)
}

// book creates an ACTIVE book with one event holding an outcome per odds value
func (f *fixture) book(t *testing.T, odds ...string) (*model.Book, []*model.Outcome) {
	t.Helper()
	ctx := context.Background()

	book, err := f.catalog.CreateBook(ctx, "manager-1", &model.CreateBookRequest{Name: "matchday"})
	require.NoError(t, err)
	event, err := f.catalog.CreateEvent(ctx, book.ID, &model.CreateEventRequest{Name: "home v away"})
	require.NoError(t, err)

	outcomes := make([]*model.Outcome, 0, len(odds))
	for i, o := range odds {
		outcome, err := f.catalog.CreateOutcome(ctx, event.ID, &model.CreateOutcomeRequest{
			Name:  fmt.Sprintf("outcome %d", i+1),
			Odds:  o,
			Order: i,
		})
		require.NoError(t, err)
		outcomes = append(outcomes, outcome)
	}
	return book, outcomes
}

func (f *fixture) bet(t *testing.T, userID, outcomeID, stake string) *model.Bet {
	t.Helper()
	bet, err := f.catalog.PlaceBet(context.Background(), userID, outcomeID, &model.PlaceBetRequest{
		Stake:          stake,
		IdempotencyKey: uuid.NewString(),
	})
	require.NoError(t, err)
	return bet
}

func (f *fixture) resolve(t *testing.T, outcomeID string, result model.OutcomeResult) *model.Outcome {
	t.Helper()
	resolution, err := f.resolver.SetResult(context.Background(), outcomeID, result.String())
	require.NoError(t, err)
	return resolution.Outcome
}

func (f *fixture) balance(t *testing.T, userID string) string {
	t.Helper()
	balance, err := f.ledger.GetBalance(context.Background(), userID)
	require.NoError(t, err)
	return balance.StringFixed(2)
}

func (f *fixture) getBet(t *testing.T, betID string) *model.Bet {
	t.Helper()
	bet, err := f.store.GetBet(context.Background(), betID)
	require.NoError(t, err)
	return bet
}

// flakyLedger fails settlement appends for chosen keys with a transient error
type flakyLedger struct {
	LedgerService

	mu      sync.Mutex
	failing map[string]bool
}

func newFlakyLedger(inner LedgerService) *flakyLedger {
	return &flakyLedger{LedgerService: inner, failing: make(map[string]bool)}
}

func (l *flakyLedger) failKey(key string, fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failing[key] = fail
}

func (l *flakyLedger) Append(ctx context.Context, req *model.AppendRequest) (*model.Transaction, error) {
	l.mu.Lock()
	fail := l.failing[req.IdempotencyKey]
	l.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("append %s: %w", req.IdempotencyKey, model.ErrTransientStorage)
	}
	return l.LedgerService.Append(ctx, req)
}

// hookedLedger runs before once, just ahead of the first append under key
type hookedLedger struct {
	LedgerService

	key    string
	before func(ctx context.Context)
	once   sync.Once
}

func (l *hookedLedger) Append(ctx context.Context, req *model.AppendRequest) (*model.Transaction, error) {
	if l.before != nil && req.IdempotencyKey == l.key {
		l.once.Do(func() { l.before(ctx) })
	}
	return l.LedgerService.Append(ctx, req)
}

// flakyCatalog fails chosen catalog calls with a transient error. Calls are
// named by method and the id they were made with.
type flakyCatalog struct {
	*memory.Store

	mu      sync.Mutex
	failing map[string]bool

	// beforeCreateBet runs ahead of the insert
	beforeCreateBet func(ctx context.Context, bet *model.Bet)
}

func newFlakyCatalog(store *memory.Store) *flakyCatalog {
	return &flakyCatalog{Store: store, failing: make(map[string]bool)}
}

func (c *flakyCatalog) failCall(method, id string, fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failing[method+":"+id] = fail
}

func (c *flakyCatalog) check(method, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing[method+":"+id] {
		return fmt.Errorf("%s %s: %w", method, id, model.ErrTransientStorage)
	}
	return nil
}

func (c *flakyCatalog) ListBooks(ctx context.Context, status model.BookStatus) ([]*model.Book, error) {
	if err := c.check("ListBooks", string(status)); err != nil {
		return nil, err
	}
	return c.Store.ListBooks(ctx, status)
}

func (c *flakyCatalog) GetOutcome(ctx context.Context, outcomeID string) (*model.Outcome, error) {
	if err := c.check("GetOutcome", outcomeID); err != nil {
		return nil, err
	}
	return c.Store.GetOutcome(ctx, outcomeID)
}

func (c *flakyCatalog) ListBetsOf(ctx context.Context, outcomeID string) ([]*model.Bet, error) {
	if err := c.check("ListBetsOf", outcomeID); err != nil {
		return nil, err
	}
	return c.Store.ListBetsOf(ctx, outcomeID)
}

func (c *flakyCatalog) CreateBet(ctx context.Context, bet *model.Bet, tx ...pgx.Tx) error {
	if c.beforeCreateBet != nil {
		c.beforeCreateBet(ctx, bet)
	}
	return c.Store.CreateBet(ctx, bet, tx...)
}
