package memory

import (
	"context"
	"fmt"

	"sportsbook-settlement/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func cloneTransaction(t *model.Transaction) *model.Transaction {
	c := *t
	c.IdempotencyKey = clonePtr(t.IdempotencyKey)
	c.BetID = clonePtr(t.BetID)
	return &c
}

// InsertTransaction stores the transaction and its initial history entry
// under one lock acquisition.
func (s *Store) InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[trans.UserID]; !ok {
		return fmt.Errorf("failed to insert transaction: %w", model.ErrUserNotFound)
	}
	if trans.IdempotencyKey != nil {
		if _, ok := s.keys[*trans.IdempotencyKey]; ok {
			return model.ErrDuplicateTransaction
		}
	}
	if _, ok := s.transactions[trans.ID]; ok {
		return model.ErrDuplicateTransaction
	}

	trans.CreatedAt = s.now()
	stored := cloneTransaction(trans)
	s.transactions[stored.ID] = stored
	s.txOrder = append(s.txOrder, stored.ID)
	if stored.IdempotencyKey != nil {
		s.keys[*stored.IdempotencyKey] = stored.ID
	}
	s.appendHistory(stored.ID, "", stored.Status)
	return nil
}

func (s *Store) appendHistory(transactionID string, from, to model.TransactionStatus) {
	s.historySeq++
	s.history[transactionID] = append(s.history[transactionID], &model.StatusHistoryEntry{
		ID:            s.historySeq,
		TransactionID: transactionID,
		FromStatus:    from,
		ToStatus:      to,
		ChangedAt:     s.now(),
	})
}

func (s *Store) GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trans, ok := s.transactions[transactionID]
	if !ok {
		return nil, model.ErrTransactionNotFound
	}
	return cloneTransaction(trans), nil
}

func (s *Store) GetTransactionByIdempotencyKey(ctx context.Context, key string, tx ...pgx.Tx) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.keys[key]
	if !ok {
		return nil, model.ErrTransactionNotFound
	}
	return cloneTransaction(s.transactions[id]), nil
}

// GetTransactionsByUser returns newest first
func (s *Store) GetTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Transaction, 0)
	skipped := 0
	for i := len(s.txOrder) - 1; i >= 0 && len(result) < limit; i-- {
		trans := s.transactions[s.txOrder[i]]
		if trans.UserID != userID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, cloneTransaction(trans))
	}
	return result, nil
}

func (s *Store) GetTransactionsByBet(ctx context.Context, betID string) ([]*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Transaction, 0)
	for _, id := range s.txOrder {
		trans := s.transactions[id]
		if trans.BetID != nil && *trans.BetID == betID {
			result = append(result, cloneTransaction(trans))
		}
	}
	return result, nil
}

func (s *Store) UpdateStatusIfPending(ctx context.Context, transactionID string, status model.TransactionStatus, tx ...pgx.Tx) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trans, ok := s.transactions[transactionID]
	if !ok || trans.Status != model.StatusPending {
		return false, nil
	}
	trans.Status = status
	s.appendHistory(transactionID, model.StatusPending, status)
	return true, nil
}

func (s *Store) GetStatusHistory(ctx context.Context, transactionID string) ([]*model.StatusHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[transactionID]
	result := make([]*model.StatusHistoryEntry, 0, len(entries))
	for _, e := range entries {
		c := *e
		result = append(result, &c)
	}
	return result, nil
}

func (s *Store) SumBalance(ctx context.Context, userID string, tx ...pgx.Tx) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := decimal.Zero
	for _, id := range s.txOrder {
		trans := s.transactions[id]
		if trans.UserID != userID || trans.Status != model.StatusSuccess {
			continue
		}
		if trans.Type.IsCredit() {
			balance = balance.Add(trans.Amount)
		} else {
			balance = balance.Sub(trans.Amount)
		}
	}
	return balance, nil
}
