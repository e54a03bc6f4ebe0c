package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CatalogServiceImpl struct {
	catalog repository.CatalogRepository
	ledger  LedgerService
	logger  zerolog.Logger
}

func NewCatalogService(catalog repository.CatalogRepository, ledger LedgerService, logger zerolog.Logger) CatalogService {
	return &CatalogServiceImpl{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

func (s *CatalogServiceImpl) CreateBook(ctx context.Context, managerID string, req *model.CreateBookRequest) (*model.Book, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidRequest)
	}

	book := &model.Book{
		ID:        uuid.NewString(),
		Name:      name,
		ManagerID: managerID,
		Status:    model.BookActive,
	}
	if err := s.catalog.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.logger.Info().Str("book_id", book.ID).Str("manager_id", managerID).Msg("book created")
	return book, nil
}

// GetBook returns the book with its events and their outcomes
func (s *CatalogServiceImpl) GetBook(ctx context.Context, bookID string) (*model.BookDetails, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	events, err := s.catalog.ListEventsOf(ctx, book.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	details := &model.BookDetails{Book: book, Events: make([]*model.EventDetails, 0, len(events))}
	for _, event := range events {
		outcomes, err := s.catalog.ListOutcomesOf(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("list outcomes: %w", err)
		}
		details.Events = append(details.Events, &model.EventDetails{Event: event, Outcomes: outcomes})
	}
	return details, nil
}

func (s *CatalogServiceImpl) ListBooks(ctx context.Context, status string) ([]*model.Book, error) {
	var filter model.BookStatus
	if status != "" {
		parsed, err := model.ParseBookStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, status)
		}
		filter = parsed
	}

	books, err := s.catalog.ListBooks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *CatalogServiceImpl) activeBook(ctx context.Context, bookID string) (*model.Book, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book.Status != model.BookActive {
		return nil, fmt.Errorf("%w: book %s is %s", model.ErrBookNotActive, book.ID, book.Status)
	}
	return book, nil
}

func (s *CatalogServiceImpl) CreateEvent(ctx context.Context, bookID string, req *model.CreateEventRequest) (*model.Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidRequest)
	}
	if _, err := s.activeBook(ctx, bookID); err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:       uuid.NewString(),
		BookID:   bookID,
		Name:     name,
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
		StartsAt: req.StartsAt,
	}
	if err := s.catalog.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info().Str("event_id", event.ID).Str("book_id", bookID).Msg("event created")
	return event, nil
}

func (s *CatalogServiceImpl) CreateOutcome(ctx context.Context, eventID string, req *model.CreateOutcomeRequest) (*model.Outcome, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidRequest)
	}
	odds, err := decimal.NewFromString(req.Odds)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidOdds, err.Error())
	}
	if odds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: got %s", model.ErrInvalidOdds, odds)
	}

	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.activeBook(ctx, event.BookID); err != nil {
		return nil, err
	}

	outcome := &model.Outcome{
		ID:      uuid.NewString(),
		EventID: event.ID,
		Name:    name,
		Odds:    odds,
		Order:   req.Order,
		Result:  model.ResultPending,
	}
	if err := s.catalog.CreateOutcome(ctx, outcome); err != nil {
		return nil, fmt.Errorf("create outcome: %w", err)
	}

	s.logger.Info().
		Str("outcome_id", outcome.ID).
		Str("event_id", event.ID).
		Str("odds", odds.String()).
		Msg("outcome created")
	return outcome, nil
}

// PlaceBet debits the stake and records the bet as PENDING. The stake
// transaction carries the bet id; if the bet row cannot be written the
// stake is refunded.
func (s *CatalogServiceImpl) PlaceBet(ctx context.Context, userID, outcomeID string, req *model.PlaceBetRequest) (*model.Bet, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", model.ErrInvalidRequest)
	}
	stake, err := decimal.NewFromString(req.Stake)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if !stake.IsPositive() {
		return nil, fmt.Errorf("%w: stake must be positive", model.ErrInvalidAmount)
	}

	outcome, err := s.catalog.GetOutcome(ctx, outcomeID)
	if err != nil {
		return nil, fmt.Errorf("get outcome: %w", err)
	}
	if outcome.IsResolved() {
		return nil, fmt.Errorf("%w: outcome %s is %s", model.ErrOutcomeClosed, outcome.ID, outcome.Result)
	}
	event, err := s.catalog.GetEvent(ctx, outcome.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.activeBook(ctx, event.BookID); err != nil {
		return nil, err
	}

	betID := uuid.NewString()
	stakeReq := &model.AppendRequest{
		UserID:      userID,
		Type:        model.TypeStake,
		Amount:      stake,
		Status:      model.StatusSuccess,
		Category:    model.CategoryBetStake,
		Description: fmt.Sprintf("stake on outcome %s", outcome.ID),
		BetID:       betID,
	}
	if req.IdempotencyKey != "" {
		stakeReq.IdempotencyKey = "stake:" + userID + ":" + req.IdempotencyKey
	}

	stakeTx, err := s.ledger.Append(ctx, stakeReq)
	if err != nil {
		return nil, fmt.Errorf("append stake: %w", err)
	}
	if stakeTx.BetID != nil && *stakeTx.BetID != betID {
		// a retried request: the bet was placed by the first attempt
		bet, err := s.catalog.GetBet(ctx, *stakeTx.BetID)
		if errors.Is(err, model.ErrBetNotFound) {
			// the first attempt failed and refunded its stake
			return nil, fmt.Errorf("%w: key %s was used by a failed placement", model.ErrDuplicateTransaction, req.IdempotencyKey)
		}
		if err != nil {
			return nil, fmt.Errorf("get bet: %w", err)
		}
		return bet, nil
	}

	stakeTxID := stakeTx.ID
	bet := &model.Bet{
		ID:                 betID,
		OutcomeID:          outcome.ID,
		UserID:             userID,
		Stake:              stake,
		Status:             model.BetPending,
		StakeTransactionID: &stakeTxID,
	}
	if err := s.catalog.CreateBet(ctx, bet); err != nil {
		s.refundStake(ctx, bet)
		return nil, fmt.Errorf("create bet: %w", err)
	}

	s.logger.Info().
		Str("bet_id", bet.ID).
		Str("user_id", userID).
		Str("outcome_id", outcome.ID).
		Str("stake", stake.StringFixed(2)).
		Msg("bet placed")
	return bet, nil
}

func (s *CatalogServiceImpl) refundStake(ctx context.Context, bet *model.Bet) {
	_, err := s.ledger.Append(ctx, &model.AppendRequest{
		UserID:         bet.UserID,
		Type:           model.TypeRefund,
		Amount:         bet.Stake,
		Status:         model.StatusSuccess,
		Category:       model.CategoryBetStake,
		Description:    fmt.Sprintf("refund stake of unplaced bet %s", bet.ID),
		IdempotencyKey: "stake-refund:" + bet.ID,
		BetID:          bet.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("bet_id", bet.ID).Msg("failed to refund stake of unplaced bet")
	}
}
