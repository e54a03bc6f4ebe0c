package service

import (
	"context"
	"iter"
	"time"

	"sportsbook-settlement/internal/model"

	"github.com/shopspring/decimal"
)

// LedgerService appends to the transaction ledger and derives balances from it
type LedgerService interface {
	Append(ctx context.Context, req *model.AppendRequest) (*model.Transaction, error)
	MarkStatus(ctx context.Context, transactionID string, status model.TransactionStatus) (*model.Transaction, error)
	// GetBalance is always the fold over the ledger
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	// GetDisplayBalance may serve a cached snapshot
	GetDisplayBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	GetTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error)
	GetTransactionsByBet(ctx context.Context, betID string) ([]*model.Transaction, error)
	GetStatusHistory(ctx context.Context, transactionID string) ([]*model.StatusHistoryEntry, error)
}

// OutcomeResolver owns the outcome result state machine
type OutcomeResolver interface {
	SetResult(ctx context.Context, outcomeID string, result string) (*model.Resolution, error)
	IsResolved(outcome *model.Outcome) bool
}

// CompletionDetector finds books whose outcomes are all resolved and claims them
type CompletionDetector interface {
	FindCompletable(ctx context.Context) iter.Seq2[*model.Book, error]
}

// SettlementProcessor turns a resolved outcome into ledger effects for one bet
type SettlementProcessor interface {
	Settle(ctx context.Context, bet *model.Bet, outcome *model.Outcome) (model.SettlementOutcome, error)
	Resume(ctx context.Context, betID string) (model.SettlementOutcome, error)
	ResumeStale(ctx context.Context, cutoff time.Time, limit int) (*model.SettlementReport, error)
	ResettleOutcome(ctx context.Context, outcomeID string) (*model.SettlementReport, error)
}

// SettlementScheduler drives settlement of completed books
type SettlementScheduler interface {
	CheckAndSettleCompletedBooks(ctx context.Context) (*model.SettlementReport, error)
	ResumeStale(ctx context.Context) (*model.SettlementReport, error)
	LastRun() *model.SettlementRun
}

// CatalogService authors books, events and outcomes and places bets
type CatalogService interface {
	CreateBook(ctx context.Context, managerID string, req *model.CreateBookRequest) (*model.Book, error)
	GetBook(ctx context.Context, bookID string) (*model.BookDetails, error)
	ListBooks(ctx context.Context, status string) ([]*model.Book, error)
	CreateEvent(ctx context.Context, bookID string, req *model.CreateEventRequest) (*model.Event, error)
	CreateOutcome(ctx context.Context, eventID string, req *model.CreateOutcomeRequest) (*model.Outcome, error)
	PlaceBet(ctx context.Context, userID, outcomeID string, req *model.PlaceBetRequest) (*model.Bet, error)
}
