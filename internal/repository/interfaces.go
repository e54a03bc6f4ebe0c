package repository

import (
	"context"
	"time"

	"sportsbook-settlement/internal/events"
	"sportsbook-settlement/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository keeps the thin user rows the ledger hangs off.
type UserRepository interface {
	// EnsureUser registers the user if it does not exist yet
	EnsureUser(ctx context.Context, userID string, tx ...pgx.Tx) error

	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error)

	GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error)
}

// LedgerRepository is the append-only transaction store.
type LedgerRepository interface {
	// InsertTransaction writes the transaction and its initial status history
	// entry in one statement. A clash on the idempotency key returns
	// model.ErrDuplicateTransaction.
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error

	GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error)

	GetTransactionByIdempotencyKey(ctx context.Context, key string, tx ...pgx.Tx) (*model.Transaction, error)

	// GetTransactionsByUser retrieves paginated transactions for a user, newest first
	GetTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error)

	GetTransactionsByBet(ctx context.Context, betID string) ([]*model.Transaction, error)

	// UpdateStatusIfPending moves a pending transaction to status and records
	// the history entry. Returns false when the transaction was not pending.
	UpdateStatusIfPending(ctx context.Context, transactionID string, status model.TransactionStatus, tx ...pgx.Tx) (bool, error)

	GetStatusHistory(ctx context.Context, transactionID string) ([]*model.StatusHistoryEntry, error)

	// SumBalance folds the user's successful transactions into a balance
	SumBalance(ctx context.Context, userID string, tx ...pgx.Tx) (decimal.Decimal, error)
}

// CatalogRepository stores books, events, outcomes and bets.
type CatalogRepository interface {
	CreateBook(ctx context.Context, book *model.Book) error
	GetBook(ctx context.Context, bookID string) (*model.Book, error)
	ListBooks(ctx context.Context, status model.BookStatus) ([]*model.Book, error)

	// SetBookStatus moves the book from expected to next. Returns false if
	// the book was not in expected.
	SetBookStatus(ctx context.Context, bookID string, expected, next model.BookStatus) (bool, error)

	CreateEvent(ctx context.Context, event *model.Event) error
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
	ListEventsOf(ctx context.Context, bookID string) ([]*model.Event, error)

	CreateOutcome(ctx context.Context, outcome *model.Outcome) error
	GetOutcome(ctx context.Context, outcomeID string) (*model.Outcome, error)
	ListOutcomesOf(ctx context.Context, eventID string) ([]*model.Outcome, error)

	// SetOutcomeResult writes result and bumps result_version if the stored
	// version still equals expectedVersion.
	SetOutcomeResult(ctx context.Context, outcomeID string, expectedVersion int, result model.OutcomeResult) (bool, error)

	CreateBet(ctx context.Context, bet *model.Bet, tx ...pgx.Tx) error
	GetBet(ctx context.Context, betID string) (*model.Bet, error)
	ListBetsOf(ctx context.Context, outcomeID string) ([]*model.Bet, error)

	// ClaimBet moves a bet PENDING -> SETTLING
	ClaimBet(ctx context.Context, betID string, claimedAt time.Time) (bool, error)

	// ReclaimStaleBet takes over a SETTLING bet whose claim is older than cutoff
	ReclaimStaleBet(ctx context.Context, betID string, cutoff, claimedAt time.Time) (bool, error)

	// ReopenSettledBet moves a SETTLED bet back to SETTLING, provided it was
	// settled at settledVersion.
	ReopenSettledBet(ctx context.Context, betID string, settledVersion int, claimedAt time.Time) (bool, error)

	// MarkBetSettled moves a bet SETTLING -> SETTLED recording the settlement
	MarkBetSettled(ctx context.Context, betID string, settlement model.BetSettlement) (bool, error)

	ListStaleSettlingBets(ctx context.Context, cutoff time.Time, limit int) ([]*model.Bet, error)

	// ListPendingBetsOfCompletedBooks finds bets left behind by a runner that
	// completed a book and never got to its bets.
	ListPendingBetsOfCompletedBooks(ctx context.Context, limit int) ([]*model.Bet, error)

	// ListBetsBehindOutcome finds SETTLED bets whose settled result version is
	// older than their outcome's current one.
	ListBetsBehindOutcome(ctx context.Context, limit int) ([]*model.Bet, error)
}

// BalanceCache holds display snapshots of folded balances.
type BalanceCache interface {
	Get(ctx context.Context, userID string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, userID string, balance decimal.Decimal) error
	Invalidate(ctx context.Context, userID string) error
}

// SettlementPublisher announces applied settlements.
type SettlementPublisher interface {
	PublishBetSettled(ctx context.Context, event events.BetSettled) error
}
