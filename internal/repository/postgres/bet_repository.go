package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sportsbook-settlement/internal/model"

	"github.com/jackc/pgx/v5"
)

const betColumns = `b.id, b.outcome_id, b.user_id, b.stake, b.status, b.stake_transaction_id, b.settlement_transaction_id,
        b.settled_result, b.settled_result_version, b.claimed_at, b.settled_at, b.created_at`

func scanBet(row pgx.Row) (*model.Bet, error) {
	bet := &model.Bet{}
	var settledResult *string
	err := row.Scan(&bet.ID, &bet.OutcomeID, &bet.UserID, &bet.Stake, &bet.Status, &bet.StakeTransactionID,
		&bet.SettlementTransactionID, &settledResult, &bet.SettledResultVersion, &bet.ClaimedAt, &bet.SettledAt, &bet.CreatedAt)
	if err != nil {
		return nil, err
	}
	if settledResult != nil {
		result := model.OutcomeResult(*settledResult)
		bet.SettledResult = &result
	}
	return bet, nil
}

// CreateBet inserts the bet only while its outcome is PENDING and its book
// ACTIVE. The share locks make a concurrent result or status change wait
// for the insert, or the insert see the change.
func (r *CatalogRepositoryImpl) CreateBet(ctx context.Context, bet *model.Bet, tx ...pgx.Tx) error {
	query := `
        INSERT INTO bets (id, outcome_id, user_id, stake, status, stake_transaction_id)
        SELECT $1, o.id, $3, $4, $5, $6
        FROM outcomes o
        JOIN events e ON e.id = o.event_id
        JOIN books k ON k.id = e.book_id
        WHERE o.id = $2
          AND o.result = 'PENDING'
          AND k.status = 'ACTIVE'
        FOR SHARE OF o, k
        RETURNING created_at`

	err := r.getExecutor(tx...).QueryRow(ctx, query, bet.ID, bet.OutcomeID, bet.UserID, bet.Stake, string(bet.Status),
		bet.StakeTransactionID).Scan(&bet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: outcome %s is no longer open for bets", model.ErrOutcomeClosed, bet.OutcomeID)
		}
		return storageError("insert bet", err)
	}
	return nil
}

func (r *CatalogRepositoryImpl) GetBet(ctx context.Context, betID string) (*model.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets b WHERE b.id = $1`

	bet, err := scanBet(r.pool.QueryRow(ctx, query, betID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, model.ErrBetNotFound
		}
		return nil, storageError("get bet", err)
	}
	return bet, nil
}

func (r *CatalogRepositoryImpl) ListBetsOf(ctx context.Context, outcomeID string) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets b
        WHERE b.outcome_id = $1
        ORDER BY b.created_at, b.id`

	return r.queryBets(ctx, "query bets", query, outcomeID)
}

// ClaimBet is the bet-level compare-and-set: whoever moves the bet out of
// PENDING owns its settlement.
func (r *CatalogRepositoryImpl) ClaimBet(ctx context.Context, betID string, claimedAt time.Time) (bool, error) {
	query := `
        UPDATE bets
        SET status = 'SETTLING',
            claimed_at = $2
        WHERE id = $1
          AND status = 'PENDING'`

	return r.execCAS(ctx, "claim bet", query, betID, claimedAt)
}

func (r *CatalogRepositoryImpl) ReclaimStaleBet(ctx context.Context, betID string, cutoff, claimedAt time.Time) (bool, error) {
	query := `
        UPDATE bets
        SET claimed_at = $3
        WHERE id = $1
          AND status = 'SETTLING'
          AND claimed_at < $2`

	return r.execCAS(ctx, "reclaim bet", query, betID, cutoff, claimedAt)
}

func (r *CatalogRepositoryImpl) ReopenSettledBet(ctx context.Context, betID string, settledVersion int, claimedAt time.Time) (bool, error) {
	query := `
        UPDATE bets
        SET status = 'SETTLING',
            claimed_at = $3
        WHERE id = $1
          AND status = 'SETTLED'
          AND settled_result_version = $2`

	return r.execCAS(ctx, "reopen bet", query, betID, settledVersion, claimedAt)
}

func (r *CatalogRepositoryImpl) MarkBetSettled(ctx context.Context, betID string, s model.BetSettlement) (bool, error) {
	query := `
        UPDATE bets
        SET status = 'SETTLED',
            settlement_transaction_id = $3,
            settled_result = $4,
            settled_result_version = $5,
            settled_at = $6
        WHERE id = $1
          AND status = 'SETTLING'
          AND claimed_at = $2`

	return r.execCAS(ctx, "mark bet settled", query, betID, s.ClaimedAt, s.TransactionID, string(s.Result),
		s.ResultVersion, s.SettledAt)
}

func (r *CatalogRepositoryImpl) ListStaleSettlingBets(ctx context.Context, cutoff time.Time, limit int) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets b
        WHERE b.status = 'SETTLING'
          AND b.claimed_at < $1
        ORDER BY b.claimed_at
        LIMIT $2`

	return r.queryBets(ctx, "query stale bets", query, cutoff, limit)
}

func (r *CatalogRepositoryImpl) ListPendingBetsOfCompletedBooks(ctx context.Context, limit int) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets b
        JOIN outcomes o ON o.id = b.outcome_id
        JOIN events e ON e.id = o.event_id
        JOIN books k ON k.id = e.book_id
        WHERE b.status = 'PENDING'
          AND k.status = 'COMPLETED'
        ORDER BY b.created_at
        LIMIT $1`

	return r.queryBets(ctx, "query orphan bets", query, limit)
}

func (r *CatalogRepositoryImpl) ListBetsBehindOutcome(ctx context.Context, limit int) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets b
        JOIN outcomes o ON o.id = b.outcome_id
        WHERE b.status = 'SETTLED'
          AND o.result <> 'PENDING'
          AND b.settled_result_version < o.result_version
        ORDER BY b.settled_at
        LIMIT $1`

	return r.queryBets(ctx, "query lagging bets", query, limit)
}

func (r *CatalogRepositoryImpl) execCAS(ctx context.Context, op, query string, args ...any) (bool, error) {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, storageError(op, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CatalogRepositoryImpl) queryBets(ctx context.Context, op, query string, args ...any) ([]*model.Bet, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	bets := make([]*model.Bet, 0)
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, storageError("scan bet", err)
		}
		bets = append(bets, bet)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}
	return bets, nil
}
