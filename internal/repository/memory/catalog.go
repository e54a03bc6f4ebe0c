package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sportsbook-settlement/internal/model"

	"github.com/jackc/pgx/v5"
)

func cloneBook(b *model.Book) *model.Book {
	c := *b
	c.CompletedAt = clonePtr(b.CompletedAt)
	return &c
}

func cloneEvent(e *model.Event) *model.Event {
	c := *e
	c.HomeTeam = clonePtr(e.HomeTeam)
	c.AwayTeam = clonePtr(e.AwayTeam)
	c.StartsAt = clonePtr(e.StartsAt)
	return &c
}

func cloneOutcome(o *model.Outcome) *model.Outcome {
	c := *o
	c.ResolvedAt = clonePtr(o.ResolvedAt)
	return &c
}

func cloneBet(b *model.Bet) *model.Bet {
	c := *b
	c.StakeTransactionID = clonePtr(b.StakeTransactionID)
	c.SettlementTransactionID = clonePtr(b.SettlementTransactionID)
	c.SettledResult = clonePtr(b.SettledResult)
	c.ClaimedAt = clonePtr(b.ClaimedAt)
	c.SettledAt = clonePtr(b.SettledAt)
	return &c
}

func (s *Store) CreateBook(ctx context.Context, book *model.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.CreatedAt = s.now()
	s.books[book.ID] = cloneBook(book)
	s.bookOrder = append(s.bookOrder, book.ID)
	return nil
}

func (s *Store) GetBook(ctx context.Context, bookID string) (*model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[bookID]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return cloneBook(book), nil
}

func (s *Store) ListBooks(ctx context.Context, status model.BookStatus) ([]*model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Book, 0)
	for _, id := range s.bookOrder {
		book := s.books[id]
		if status == "" || book.Status == status {
			result = append(result, cloneBook(book))
		}
	}
	return result, nil
}

func (s *Store) SetBookStatus(ctx context.Context, bookID string, expected, next model.BookStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok || book.Status != expected {
		return false, nil
	}
	book.Status = next
	if next == model.BookCompleted {
		now := s.now()
		book.CompletedAt = &now
	}
	return true, nil
}

func (s *Store) CreateEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[event.BookID]; !ok {
		return fmt.Errorf("failed to insert event: %w", model.ErrBookNotFound)
	}
	event.CreatedAt = s.now()
	s.events[event.ID] = cloneEvent(event)
	s.eventOrder = append(s.eventOrder, event.ID)
	return nil
}

func (s *Store) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return cloneEvent(event), nil
}

func (s *Store) ListEventsOf(ctx context.Context, bookID string) ([]*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Event, 0)
	for _, id := range s.eventOrder {
		if event := s.events[id]; event.BookID == bookID {
			result = append(result, cloneEvent(event))
		}
	}
	return result, nil
}

func (s *Store) CreateOutcome(ctx context.Context, outcome *model.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[outcome.EventID]; !ok {
		return fmt.Errorf("failed to insert outcome: %w", model.ErrEventNotFound)
	}
	outcome.CreatedAt = s.now()
	s.outcomes[outcome.ID] = cloneOutcome(outcome)
	s.outcomeOrder = append(s.outcomeOrder, outcome.ID)
	return nil
}

func (s *Store) GetOutcome(ctx context.Context, outcomeID string) (*model.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	outcome, ok := s.outcomes[outcomeID]
	if !ok {
		return nil, model.ErrOutcomeNotFound
	}
	return cloneOutcome(outcome), nil
}

// ListOutcomesOf returns outcomes ordered by their display order
func (s *Store) ListOutcomesOf(ctx context.Context, eventID string) ([]*model.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Outcome, 0)
	for _, id := range s.outcomeOrder {
		if outcome := s.outcomes[id]; outcome.EventID == eventID {
			result = append(result, cloneOutcome(outcome))
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

func (s *Store) SetOutcomeResult(ctx context.Context, outcomeID string, expectedVersion int, result model.OutcomeResult) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, ok := s.outcomes[outcomeID]
	if !ok || outcome.ResultVersion != expectedVersion {
		return false, nil
	}
	now := s.now()
	outcome.Result = result
	outcome.ResultVersion++
	outcome.ResolvedAt = &now
	return true, nil
}

func (s *Store) CreateBet(ctx context.Context, bet *model.Bet, tx ...pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, ok := s.outcomes[bet.OutcomeID]
	if !ok {
		return fmt.Errorf("failed to insert bet: %w", model.ErrOutcomeNotFound)
	}
	if outcome.IsResolved() {
		return fmt.Errorf("%w: outcome %s is %s", model.ErrOutcomeClosed, outcome.ID, outcome.Result)
	}
	if book := s.books[s.events[outcome.EventID].BookID]; book.Status != model.BookActive {
		return fmt.Errorf("%w: book %s is %s", model.ErrBookNotActive, book.ID, book.Status)
	}
	if _, ok := s.users[bet.UserID]; !ok {
		return fmt.Errorf("failed to insert bet: %w", model.ErrUserNotFound)
	}
	bet.CreatedAt = s.now()
	s.bets[bet.ID] = cloneBet(bet)
	s.betOrder = append(s.betOrder, bet.ID)
	return nil
}

func (s *Store) GetBet(ctx context.Context, betID string) (*model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bet, ok := s.bets[betID]
	if !ok {
		return nil, model.ErrBetNotFound
	}
	return cloneBet(bet), nil
}

func (s *Store) ListBetsOf(ctx context.Context, outcomeID string) ([]*model.Bet, error) {
	return s.filterBets(0, func(b *model.Bet) bool { return b.OutcomeID == outcomeID }), nil
}

func (s *Store) ClaimBet(ctx context.Context, betID string, claimedAt time.Time) (bool, error) {
	return s.updateBet(betID, func(b *model.Bet) bool {
		if b.Status != model.BetPending {
			return false
		}
		b.Status = model.BetSettling
		b.ClaimedAt = &claimedAt
		return true
	}), nil
}

func (s *Store) ReclaimStaleBet(ctx context.Context, betID string, cutoff, claimedAt time.Time) (bool, error) {
	return s.updateBet(betID, func(b *model.Bet) bool {
		if b.Status != model.BetSettling || b.ClaimedAt == nil || !b.ClaimedAt.Before(cutoff) {
			return false
		}
		b.ClaimedAt = &claimedAt
		return true
	}), nil
}

func (s *Store) ReopenSettledBet(ctx context.Context, betID string, settledVersion int, claimedAt time.Time) (bool, error) {
	return s.updateBet(betID, func(b *model.Bet) bool {
		if b.Status != model.BetSettled || b.SettledResultVersion != settledVersion {
			return false
		}
		b.Status = model.BetSettling
		b.ClaimedAt = &claimedAt
		return true
	}), nil
}

func (s *Store) MarkBetSettled(ctx context.Context, betID string, settlement model.BetSettlement) (bool, error) {
	return s.updateBet(betID, func(b *model.Bet) bool {
		if b.Status != model.BetSettling || b.ClaimedAt == nil || !b.ClaimedAt.Equal(settlement.ClaimedAt) {
			return false
		}
		result := settlement.Result
		settledAt := settlement.SettledAt
		b.Status = model.BetSettled
		b.SettlementTransactionID = clonePtr(settlement.TransactionID)
		b.SettledResult = &result
		b.SettledResultVersion = settlement.ResultVersion
		b.SettledAt = &settledAt
		return true
	}), nil
}

func (s *Store) ListStaleSettlingBets(ctx context.Context, cutoff time.Time, limit int) ([]*model.Bet, error) {
	return s.filterBets(limit, func(b *model.Bet) bool {
		return b.Status == model.BetSettling && b.ClaimedAt != nil && b.ClaimedAt.Before(cutoff)
	}), nil
}

func (s *Store) ListPendingBetsOfCompletedBooks(ctx context.Context, limit int) ([]*model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Bet, 0)
	for _, id := range s.betOrder {
		if limit > 0 && len(result) >= limit {
			break
		}
		bet := s.bets[id]
		if bet.Status != model.BetPending {
			continue
		}
		outcome := s.outcomes[bet.OutcomeID]
		event := s.events[outcome.EventID]
		if s.books[event.BookID].Status == model.BookCompleted {
			result = append(result, cloneBet(bet))
		}
	}
	return result, nil
}

func (s *Store) ListBetsBehindOutcome(ctx context.Context, limit int) ([]*model.Bet, error) {
	return s.filterBets(limit, func(b *model.Bet) bool {
		if b.Status != model.BetSettled {
			return false
		}
		outcome := s.outcomes[b.OutcomeID]
		return outcome.IsResolved() && b.SettledResultVersion < outcome.ResultVersion
	}), nil
}

func (s *Store) updateBet(betID string, apply func(*model.Bet) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bet, ok := s.bets[betID]
	if !ok {
		return false
	}
	return apply(bet)
}

// filterBets returns matching bets in insertion order; limit 0 means all
func (s *Store) filterBets(limit int, match func(*model.Bet) bool) []*model.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Bet, 0)
	for _, id := range s.betOrder {
		if limit > 0 && len(result) >= limit {
			break
		}
		if bet := s.bets[id]; match(bet) {
			result = append(result, cloneBet(bet))
		}
	}
	return result
}
