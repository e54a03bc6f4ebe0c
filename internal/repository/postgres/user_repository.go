package postgres

import (
	"context"
	"errors"

	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// EnsureUser registers the user on first ledger activity
func (r *UserRepositoryImpl) EnsureUser(ctx context.Context, userID string, tx ...pgx.Tx) error {
	query := `INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`

	if _, err := r.getExecutor(tx...).Exec(ctx, query, userID); err != nil {
		return storageError("ensure user", err)
	}
	return nil
}

// GetUserForUpdate retrieves a user with row-level lock, serializing
// debits of the same user.
func (r *UserRepositoryImpl) GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error) {
	query := `SELECT id, created_at FROM users WHERE id = $1 FOR UPDATE`

	user := &model.User{}
	err := tx.QueryRow(ctx, query, userID).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, storageError("get user for update", err)
	}
	return user, nil
}

func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT id, created_at FROM users WHERE id = $1`

	user := &model.User{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, userID).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, storageError("get user", err)
	}
	return user, nil
}
