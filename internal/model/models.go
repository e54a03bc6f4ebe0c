package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction is an immutable ledger entry. Only Status moves, and only
// forward from pending.
type Transaction struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	Type           TransactionType   `json:"type"`
	Amount         decimal.Decimal   `json:"amount"`
	Status         TransactionStatus `json:"status"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	IdempotencyKey *string           `json:"idempotency_key,omitempty"`
	BetID          *string           `json:"bet_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type StatusHistoryEntry struct {
	ID            int64             `json:"id"`
	TransactionID string            `json:"transaction_id"`
	FromStatus    TransactionStatus `json:"from_status,omitempty"`
	ToStatus      TransactionStatus `json:"to_status"`
	ChangedAt     time.Time         `json:"changed_at"`
}

// AppendRequest carries an already-parsed ledger append.
type AppendRequest struct {
	UserID         string
	Type           TransactionType
	Amount         decimal.Decimal
	Status         TransactionStatus
	Category       string
	Description    string
	IdempotencyKey string
	BetID          string
	// AllowNegativeBalance skips the funds check on debits. Used for
	// settlement reversals, which must land even if the payout was spent.
	AllowNegativeBalance bool
}

type Book struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ManagerID   string     `json:"manager_id"`
	Status      BookStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Event struct {
	ID        string     `json:"id"`
	BookID    string     `json:"book_id"`
	Name      string     `json:"name"`
	HomeTeam  *string    `json:"home_team,omitempty"`
	AwayTeam  *string    `json:"away_team,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Outcome struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	Name          string          `json:"name"`
	Odds          decimal.Decimal `json:"odds"`
	Order         int             `json:"order"`
	Result        OutcomeResult   `json:"result"`
	ResultVersion int             `json:"result_version"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsResolved is true once the outcome carries a terminal result.
func (o *Outcome) IsResolved() bool {
	return o.Result.IsTerminal()
}

type Bet struct {
	ID                      string          `json:"id"`
	OutcomeID               string          `json:"outcome_id"`
	UserID                  string          `json:"user_id"`
	Stake                   decimal.Decimal `json:"stake"`
	Status                  BetStatus       `json:"status"`
	StakeTransactionID      *string         `json:"stake_transaction_id,omitempty"`
	SettlementTransactionID *string         `json:"settlement_transaction_id,omitempty"`
	SettledResult           *OutcomeResult  `json:"settled_result,omitempty"`
	SettledResultVersion    int             `json:"settled_result_version"`
	ClaimedAt               *time.Time      `json:"claimed_at,omitempty"`
	SettledAt               *time.Time      `json:"settled_at,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
}

// BetSettlement is written together with the SETTLING -> SETTLED transition.
// ClaimedAt must match the claim that is finishing; a bet re-claimed by
// another runner in the meantime is left alone.
type BetSettlement struct {
	ClaimedAt     time.Time
	TransactionID *string
	Result        OutcomeResult
	ResultVersion int
	SettledAt     time.Time
}

// Resolution describes what a SetResult call changed. Resettled is set when
// already settled bets were revisited.
type Resolution struct {
	Outcome    *Outcome          `json:"outcome"`
	Previous   OutcomeResult     `json:"previous"`
	Changed    bool              `json:"changed"`
	Correction bool              `json:"correction"`
	Resettled  *SettlementReport `json:"resettled,omitempty"`
}

type SettlementReport struct {
	BooksSettled int `json:"booksSettled"`
	BetsSettled  int `json:"betsSettled"`
	BetsFailed   int `json:"betsFailed"`
}

func (r *SettlementReport) Add(other *SettlementReport) {
	if other == nil {
		return
	}
	r.BooksSettled += other.BooksSettled
	r.BetsSettled += other.BetsSettled
	r.BetsFailed += other.BetsFailed
}

type SettlementRun struct {
	Report     SettlementReport `json:"report"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Err        string           `json:"error,omitempty"`
}

type BookDetails struct {
	*Book
	Events []*EventDetails `json:"events"`
}

type EventDetails struct {
	*Event
	Outcomes []*Outcome `json:"outcomes"`
}
