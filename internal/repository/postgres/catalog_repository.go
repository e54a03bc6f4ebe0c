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
var _ repository.CatalogRepository = (*CatalogRepositoryImpl)(nil)

// CatalogRepositoryImpl stores books, events, outcomes and bets
type CatalogRepositoryImpl struct {
	*TransactionManager
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepositoryImpl {
	return &CatalogRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *CatalogRepositoryImpl) CreateBook(ctx context.Context, book *model.Book) error {
	query := `
        INSERT INTO books (id, name, manager_id, status)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, book.ID, book.Name, book.ManagerID, string(book.Status)).Scan(&book.CreatedAt)
	if err != nil {
		return storageError("insert book", err)
	}
	return nil
}

func (r *CatalogRepositoryImpl) GetBook(ctx context.Context, bookID string) (*model.Book, error) {
	query := `SELECT id, name, manager_id, status, created_at, completed_at FROM books WHERE id = $1`

	book := &model.Book{}
	err := r.pool.QueryRow(ctx, query, bookID).
		Scan(&book.ID, &book.Name, &book.ManagerID, &book.Status, &book.CreatedAt, &book.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, model.ErrBookNotFound
		}
		return nil, storageError("get book", err)
	}
	return book, nil
}

// ListBooks returns books in status, or every book when status is empty
func (r *CatalogRepositoryImpl) ListBooks(ctx context.Context, status model.BookStatus) ([]*model.Book, error) {
	query := `
        SELECT id, name, manager_id, status, created_at, completed_at
        FROM books
        WHERE ($1::text = '' OR status = $1::text)
        ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, storageError("query books", err)
	}
	defer rows.Close()

	books := make([]*model.Book, 0)
	for rows.Next() {
		book := &model.Book{}
		if err := rows.Scan(&book.ID, &book.Name, &book.ManagerID, &book.Status, &book.CreatedAt, &book.CompletedAt); err != nil {
			return nil, storageError("scan book", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("query books", err)
	}
	return books, nil
}

// SetBookStatus is the book-level compare-and-set
func (r *CatalogRepositoryImpl) SetBookStatus(ctx context.Context, bookID string, expected, next model.BookStatus) (bool, error) {
	query := `
        UPDATE books
        SET status = $3::text,
            completed_at = CASE WHEN $3::text = 'COMPLETED' THEN NOW() ELSE completed_at END
        WHERE id = $1
          AND status = $2`

	result, err := r.pool.Exec(ctx, query, bookID, string(expected), string(next))
	if err != nil {
		return false, storageError("update book status", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *CatalogRepositoryImpl) CreateEvent(ctx context.Context, event *model.Event) error {
	query := `
        INSERT INTO events (id, book_id, name, home_team, away_team, starts_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, event.ID, event.BookID, event.Name, event.HomeTeam, event.AwayTeam, event.StartsAt).
		Scan(&event.CreatedAt)
	if err != nil {
		return storageError("insert event", err)
	}
	return nil
}

func (r *CatalogRepositoryImpl) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	query := `SELECT id, book_id, name, home_team, away_team, starts_at, created_at FROM events WHERE id = $1`

	event := &model.Event{}
	err := r.pool.QueryRow(ctx, query, eventID).
		Scan(&event.ID, &event.BookID, &event.Name, &event.HomeTeam, &event.AwayTeam, &event.StartsAt, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, model.ErrEventNotFound
		}
		return nil, storageError("get event", err)
	}
	return event, nil
}

func (r *CatalogRepositoryImpl) ListEventsOf(ctx context.Context, bookID string) ([]*model.Event, error) {
	query := `
        SELECT id, book_id, name, home_team, away_team, starts_at, created_at
        FROM events
        WHERE book_id = $1
        ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, storageError("query events", err)
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event := &model.Event{}
		if err := rows.Scan(&event.ID, &event.BookID, &event.Name, &event.HomeTeam, &event.AwayTeam, &event.StartsAt, &event.CreatedAt); err != nil {
			return nil, storageError("scan event", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("query events", err)
	}
	return events, nil
}

const outcomeColumns = `id, event_id, name, odds, sort_order, result, result_version, resolved_at, created_at`

func scanOutcome(row pgx.Row) (*model.Outcome, error) {
	outcome := &model.Outcome{}
	err := row.Scan(&outcome.ID, &outcome.EventID, &outcome.Name, &outcome.Odds, &outcome.Order, &outcome.Result,
		&outcome.ResultVersion, &outcome.ResolvedAt, &outcome.CreatedAt)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (r *CatalogRepositoryImpl) CreateOutcome(ctx context.Context, outcome *model.Outcome) error {
	query := `
        INSERT INTO outcomes (id, event_id, name, odds, sort_order, result, result_version)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, outcome.ID, outcome.EventID, outcome.Name, outcome.Odds, outcome.Order,
		string(outcome.Result), outcome.ResultVersion).Scan(&outcome.CreatedAt)
	if err != nil {
		return storageError("insert outcome", err)
	}
	return nil
}

func (r *CatalogRepositoryImpl) GetOutcome(ctx context.Context, outcomeID string) (*model.Outcome, error) {
	query := `SELECT ` + outcomeColumns + ` FROM outcomes WHERE id = $1`

	outcome, err := scanOutcome(r.pool.QueryRow(ctx, query, outcomeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, model.ErrOutcomeNotFound
		}
		return nil, storageError("get outcome", err)
	}
	return outcome, nil
}

func (r *CatalogRepositoryImpl) ListOutcomesOf(ctx context.Context, eventID string) ([]*model.Outcome, error) {
	query := `
        SELECT ` + outcomeColumns + `
        FROM outcomes
        WHERE event_id = $1
        ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, storageError("query outcomes", err)
	}
	defer rows.Close()

	outcomes := make([]*model.Outcome, 0)
	for rows.Next() {
		outcome, err := scanOutcome(rows)
		if err != nil {
			return nil, storageError("scan outcome", err)
		}
		outcomes = append(outcomes, outcome)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("query outcomes", err)
	}
	return outcomes, nil
}

// SetOutcomeResult is a version compare-and-set. Every accepted write bumps
// result_version, which is what lets settled bets detect a correction.
func (r *CatalogRepositoryImpl) SetOutcomeResult(ctx context.Context, outcomeID string, expectedVersion int, result model.OutcomeResult) (bool, error) {
	query := `
        UPDATE outcomes
        SET result = $3,
            result_version = result_version + 1,
            resolved_at = NOW()
        WHERE id = $1
          AND result_version = $2`

	tag, err := r.pool.Exec(ctx, query, outcomeID, expectedVersion, string(result))
	if err != nil {
		return false, storageError("update outcome result", err)
	}
	return tag.RowsAffected() == 1, nil
}
