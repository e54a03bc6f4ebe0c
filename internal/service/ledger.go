package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sportsbook-settlement/internal/metrics"
	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// rollback and check for duplicate outside tx
var errDuplicateInsertRace = errors.New("duplicate transaction insert race")

// amounts are stored with four decimal places
const amountScale = 4

type LedgerServiceImpl struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	dbManager  repository.DBManager
	cache      repository.BalanceCache
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	cache repository.BalanceCache,
	m *metrics.Metrics,
	logger zerolog.Logger,
) LedgerService {
	if cache == nil {
		cache = noopCache{}
	}
	return &LedgerServiceImpl{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		dbManager:  dbManager,
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

// validateAppend checks the request and normalizes its enums in place
func validateAppend(req *model.AppendRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: user id is required", model.ErrInvalidRequest)
	}
	txType, err := model.ParseTransactionType(string(req.Type))
	if err != nil {
		return fmt.Errorf("%w: %q", err, req.Type)
	}
	status, err := model.ParseTransactionStatus(string(req.Status))
	if err != nil {
		return fmt.Errorf("%w: %q", err, req.Status)
	}
	req.Type, req.Status = txType, status
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", model.ErrInvalidAmount)
	}
	if req.Amount.Exponent() < -amountScale && !req.Amount.Equal(req.Amount.Round(amountScale)) {
		return fmt.Errorf("%w: at most %d decimal places", model.ErrInvalidAmount, amountScale)
	}
	return nil
}

// needsFundsCheck is true for user debits that take effect immediately
func needsFundsCheck(req *model.AppendRequest) bool {
	return req.Type.IsDebit() && req.Status == model.StatusSuccess && !req.AllowNegativeBalance
}

func (s *LedgerServiceImpl) Append(ctx context.Context, req *model.AppendRequest) (*model.Transaction, error) {
	if err := validateAppend(req); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" {
		existing, err := s.existingForKey(ctx, req)
		if err != nil || existing != nil {
			return existing, err
		}
	}

	if err := s.userRepo.EnsureUser(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	trans := &model.Transaction{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Status:      req.Status,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		trans.IdempotencyKey = &key
	}
	if req.BetID != "" {
		betID := req.BetID
		trans.BetID = &betID
	}

	var err error
	if needsFundsCheck(req) {
		// Lock the user row so concurrent debits see each other
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			if _, err := s.userRepo.GetUserForUpdate(ctx, req.UserID, tx); err != nil {
				return fmt.Errorf("get user for update: %w", err)
			}
			if err := s.checkFunds(ctx, req.UserID, req.Amount, tx); err != nil {
				return err
			}
			return s.insert(ctx, trans, tx)
		})
	} else {
		err = s.insert(ctx, trans)
	}

	if errors.Is(err, errDuplicateInsertRace) {
		existing, getErr := s.existingForKey(ctx, req)
		if getErr != nil {
			return nil, fmt.Errorf("get transaction after duplicate: %w", getErr)
		}
		if existing == nil {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicateTransaction, trans.ID)
		}
		s.logger.Info().
			Str("idempotency_key", req.IdempotencyKey).
			Str("transaction_id", existing.ID).
			Msg("transaction already appended (detected after rollback)")
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, trans.UserID)
	s.metrics.LedgerAppend(trans.Type.String())

	s.logger.Info().
		Str("transaction_id", trans.ID).
		Str("user_id", trans.UserID).
		Str("type", trans.Type.String()).
		Str("status", trans.Status.String()).
		Str("amount", trans.Amount.StringFixed(2)).
		Str("category", trans.Category).
		Msg("transaction appended")

	return trans, nil
}

// existingForKey returns the transaction already stored under the request's
// key, or nil. A key reused by another user is a conflict.
func (s *LedgerServiceImpl) existingForKey(ctx context.Context, req *model.AppendRequest) (*model.Transaction, error) {
	existing, err := s.ledgerRepo.GetTransactionByIdempotencyKey(ctx, req.IdempotencyKey)
	if errors.Is(err, model.ErrTransactionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction by key: %w", err)
	}
	if existing.UserID != req.UserID {
		return nil, fmt.Errorf("%w: key %s belongs to another user", model.ErrDuplicateTransaction, req.IdempotencyKey)
	}
	return existing, nil
}

func (s *LedgerServiceImpl) insert(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error {
	err := s.ledgerRepo.InsertTransaction(ctx, trans, tx...)
	if errors.Is(err, model.ErrDuplicateTransaction) {
		return errDuplicateInsertRace
	}
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *LedgerServiceImpl) checkFunds(ctx context.Context, userID string, amount decimal.Decimal, tx pgx.Tx) error {
	balance, err := s.ledgerRepo.SumBalance(ctx, userID, tx)
	if err != nil {
		return fmt.Errorf("sum balance: %w", err)
	}
	if balance.LessThan(amount) {
		s.logger.Warn().
			Str("user_id", userID).
			Str("balance", balance.StringFixed(2)).
			Str("amount", amount.StringFixed(2)).
			Msg("insufficient balance")
		return model.ErrInsufficientBalance
	}
	return nil
}

func (s *LedgerServiceImpl) MarkStatus(ctx context.Context, transactionID string, status model.TransactionStatus) (*model.Transaction, error) {
	parsed, err := model.ParseTransactionStatus(string(status))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, status)
	}
	status = parsed

	trans, err := s.ledgerRepo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if trans.Status == status {
		return trans, nil
	}
	if trans.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s is %s", model.ErrTerminalStatus, trans.ID, trans.Status)
	}

	var updated bool
	if status == model.StatusSuccess && trans.Type.IsDebit() {
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			if _, err := s.userRepo.GetUserForUpdate(ctx, trans.UserID, tx); err != nil {
				return fmt.Errorf("get user for update: %w", err)
			}
			if err := s.checkFunds(ctx, trans.UserID, trans.Amount, tx); err != nil {
				return err
			}
			updated, err = s.ledgerRepo.UpdateStatusIfPending(ctx, trans.ID, status, tx)
			return err
		})
	} else {
		updated, err = s.ledgerRepo.UpdateStatusIfPending(ctx, trans.ID, status)
	}
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	current, err := s.ledgerRepo.GetTransaction(ctx, trans.ID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if !updated && current.Status != status {
		// someone else finished it first, with a different status
		return nil, fmt.Errorf("%w: %s is %s", model.ErrTerminalStatus, current.ID, current.Status)
	}

	s.invalidate(ctx, trans.UserID)
	s.logger.Info().
		Str("transaction_id", trans.ID).
		Str("from_status", trans.Status.String()).
		Str("to_status", status.String()).
		Msg("transaction status changed")

	return current, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return decimal.Zero, fmt.Errorf("get user: %w", err)
	}

	balance, err := s.ledgerRepo.SumBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum balance: %w", err)
	}

	if err := s.cache.Set(ctx, userID, balance); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to cache balance")
	}
	return balance, nil
}

func (s *LedgerServiceImpl) GetDisplayBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	balance, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to read cached balance")
	}
	if ok {
		return balance, nil
	}
	return s.GetBalance(ctx, userID)
}

func (s *LedgerServiceImpl) GetTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Transaction, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	transactions, err := s.ledgerRepo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}

	return transactions, nil
}

func (s *LedgerServiceImpl) GetTransactionsByBet(ctx context.Context, betID string) ([]*model.Transaction, error) {
	transactions, err := s.ledgerRepo.GetTransactionsByBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("get bet transactions: %w", err)
	}
	return transactions, nil
}

func (s *LedgerServiceImpl) GetStatusHistory(ctx context.Context, transactionID string) ([]*model.StatusHistoryEntry, error) {
	if _, err := s.ledgerRepo.GetTransaction(ctx, transactionID); err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	history, err := s.ledgerRepo.GetStatusHistory(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}
	return history, nil
}

func (s *LedgerServiceImpl) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate cached balance")
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (noopCache) Set(context.Context, string, decimal.Decimal) error { return nil }

func (noopCache) Invalidate(context.Context, string) error { return nil }
