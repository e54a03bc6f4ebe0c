package postgres

import (
	"context"
	"errors"

	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepositoryImpl {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, user_id, type, amount, status, category, description, idempotency_key, bet_id, created_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	trans := &model.Transaction{}
	err := row.Scan(&trans.ID, &trans.UserID, &trans.Type, &trans.Amount, &trans.Status, &trans.Category,
		&trans.Description, &trans.IdempotencyKey, &trans.BetID, &trans.CreatedAt)
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// InsertTransaction creates the transaction and its initial history entry
// in a single statement, so a reader sees both or neither.
func (r *LedgerRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error {
	query := `
        WITH ins AS (
            INSERT INTO transactions (id, user_id, type, amount, status, category, description, idempotency_key, bet_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id, status, created_at
        ), hist AS (
            INSERT INTO transaction_status_history (transaction_id, from_status, to_status, changed_at)
            SELECT id, '', status, created_at FROM ins
        )
        SELECT created_at FROM ins`

	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, trans.ID, trans.UserID, string(trans.Type), trans.Amount, string(trans.Status),
		trans.Category, trans.Description, trans.IdempotencyKey, trans.BetID).Scan(&trans.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateTransaction
		}
		return storageError("insert transaction", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by its ID
func (r *LedgerRepositoryImpl) GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	trans, err := scanTransaction(r.getExecutor(tx...).QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, storageError("get transaction", err)
	}
	return trans, nil
}

func (r *LedgerRepositoryImpl) GetTransactionByIdempotencyKey(ctx context.Context, key string, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE idempotency_key = $1`

	trans, err := scanTransaction(r.getExecutor(tx...).QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, storageError("get transaction by key", err)
	}
	return trans, nil
}

// GetTransactionsByUser retrieves paginated transactions for a user
func (r *LedgerRepositoryImpl) GetTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC, id
        LIMIT $2 OFFSET $3`

	return r.queryTransactions(ctx, "query transactions", query, userID, limit, offset)
}

func (r *LedgerRepositoryImpl) GetTransactionsByBet(ctx context.Context, betID string) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE bet_id = $1
        ORDER BY created_at, id`

	return r.queryTransactions(ctx, "query bet transactions", query, betID)
}

func (r *LedgerRepositoryImpl) queryTransactions(ctx context.Context, op, query string, args ...any) ([]*model.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	transactions := make([]*model.Transaction, 0)
	for rows.Next() {
		trans, err := scanTransaction(rows)
		if err != nil {
			return nil, storageError("scan transaction", err)
		}
		transactions = append(transactions, trans)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}
	return transactions, nil
}

// UpdateStatusIfPending moves a pending transaction forward and writes the
// history entry in the same statement.
func (r *LedgerRepositoryImpl) UpdateStatusIfPending(ctx context.Context, transactionID string, status model.TransactionStatus, tx ...pgx.Tx) (bool, error) {
	query := `
        WITH upd AS (
            UPDATE transactions
            SET status = $2
            WHERE id = $1
              AND status = 'pending'
            RETURNING id
        )
        INSERT INTO transaction_status_history (transaction_id, from_status, to_status)
        SELECT id, 'pending', $2 FROM upd`

	result, err := r.getExecutor(tx...).Exec(ctx, query, transactionID, string(status))
	if err != nil {
		return false, storageError("update transaction status", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *LedgerRepositoryImpl) GetStatusHistory(ctx context.Context, transactionID string) ([]*model.StatusHistoryEntry, error) {
	query := `
        SELECT id, transaction_id, from_status, to_status, changed_at
        FROM transaction_status_history
        WHERE transaction_id = $1
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		if isInvalidText(err) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, storageError("query status history", err)
	}
	defer rows.Close()

	history := make([]*model.StatusHistoryEntry, 0)
	for rows.Next() {
		entry := &model.StatusHistoryEntry{}
		if err := rows.Scan(&entry.ID, &entry.TransactionID, &entry.FromStatus, &entry.ToStatus, &entry.ChangedAt); err != nil {
			if isInvalidText(err) {
				return nil, model.ErrTransactionNotFound
			}
			return nil, storageError("scan status history", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("query status history", err)
	}
	return history, nil
}

// SumBalance folds successful transactions. Credits add, debits subtract.
func (r *LedgerRepositoryImpl) SumBalance(ctx context.Context, userID string, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(
            CASE WHEN type IN ('deposit', 'payout', 'refund', 'bonus') THEN amount ELSE -amount END
        ), 0)
        FROM transactions
        WHERE user_id = $1
          AND status = 'success'`

	var balance decimal.Decimal
	if err := r.getExecutor(tx...).QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		return decimal.Zero, storageError("sum balance", err)
	}
	return balance, nil
}
