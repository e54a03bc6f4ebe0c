// Package memory keeps every storage port in process. Each call is atomic on
// the single record it touches, which is all the settlement engine relies on.
package memory

import (
	"context"
	"sync"
	"time"

	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
)

var (
	_ repository.DBManager         = (*Store)(nil)
	_ repository.UserRepository    = (*Store)(nil)
	_ repository.LedgerRepository  = (*Store)(nil)
	_ repository.CatalogRepository = (*Store)(nil)
)

type Store struct {
	// txMu serializes WithTransaction callers, standing in for the user row
	// lock the postgres store takes.
	txMu sync.Mutex

	mu           sync.RWMutex
	users        map[string]*model.User
	transactions map[string]*model.Transaction
	txOrder      []string
	keys         map[string]string
	history      map[string][]*model.StatusHistoryEntry
	historySeq   int64
	books        map[string]*model.Book
	bookOrder    []string
	events       map[string]*model.Event
	eventOrder   []string
	outcomes     map[string]*model.Outcome
	outcomeOrder []string
	bets         map[string]*model.Bet
	betOrder     []string

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*model.User),
		transactions: make(map[string]*model.Transaction),
		keys:         make(map[string]string),
		history:      make(map[string][]*model.StatusHistoryEntry),
		books:        make(map[string]*model.Book),
		events:       make(map[string]*model.Event),
		outcomes:     make(map[string]*model.Outcome),
		bets:         make(map[string]*model.Bet),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithTransaction runs fn under the store-wide transaction lock. The pgx.Tx
// handed to fn is always nil.
func (s *Store) WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(nil)
}

func (s *Store) EnsureUser(ctx context.Context, userID string, tx ...pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		s.users[userID] = &model.User{ID: userID, CreatedAt: s.now()}
	}
	return nil
}

func (s *Store) GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error) {
	return s.GetUser(ctx, userID)
}

func (s *Store) GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
