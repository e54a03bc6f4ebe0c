package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sportsbook-settlement/internal/model"
	mocks "sportsbook-settlement/mocks/repository"
	svcmocks "sportsbook-settlement/mocks/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outcomeAt(result model.OutcomeResult, version int) *model.Outcome {
	return &model.Outcome{
		ID:            "outcome-1",
		EventID:       "event-1",
		Odds:          decimal.RequireFromString("2.00"),
		Result:        result,
		ResultVersion: version,
	}
}

func TestSetResult_FirstResolution(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockResettler := svcmocks.NewSettlementProcessor(t)

	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultPending, 0), nil).Once()
	mockCatalog.On("SetOutcomeResult", ctx, "outcome-1", 0, model.ResultWon).Return(true, nil)
	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultWon, 1), nil).Once()

	resolver := NewOutcomeResolver(mockCatalog, mockResettler, nil, zerolog.Nop())

	resolution, err := resolver.SetResult(ctx, "outcome-1", "won")

	require.NoError(t, err)
	assert.True(t, resolution.Changed)
	assert.False(t, resolution.Correction)
	assert.Equal(t, model.ResultPending, resolution.Previous)
	assert.Equal(t, 1, resolution.Outcome.ResultVersion)
	assert.Nil(t, resolution.Resettled)
	mockResettler.AssertNotCalled(t, "ResettleOutcome", mock.Anything, mock.Anything)
}

func TestSetResult_SameValueIsNoop(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultWon, 1), nil)

	resolver := NewOutcomeResolver(mockCatalog, svcmocks.NewSettlementProcessor(t), nil, zerolog.Nop())

	resolution, err := resolver.SetResult(ctx, "outcome-1", "WON")

	require.NoError(t, err)
	assert.False(t, resolution.Changed)
	mockCatalog.AssertNotCalled(t, "SetOutcomeResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetResult_SameValueAfterCorrectionRetriesResettle(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockResettler := svcmocks.NewSettlementProcessor(t)

	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultLost, 2), nil)
	mockResettler.On("ResettleOutcome", ctx, "outcome-1").Return(&model.SettlementReport{BetsSettled: 1}, nil)

	resolver := NewOutcomeResolver(mockCatalog, mockResettler, nil, zerolog.Nop())

	resolution, err := resolver.SetResult(ctx, "outcome-1", "LOST")

	require.NoError(t, err)
	assert.False(t, resolution.Changed)
	require.NotNil(t, resolution.Resettled)
	assert.Equal(t, 1, resolution.Resettled.BetsSettled)
}

func TestSetResult_ReopenIsRejected(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultVoid, 1), nil)

	resolver := NewOutcomeResolver(mockCatalog, nil, nil, zerolog.Nop())

	_, err := resolver.SetResult(ctx, "outcome-1", "PENDING")

	require.ErrorIs(t, err, model.ErrOutcomeReopen)
	assert.ErrorIs(t, err, model.ErrInvalidState)
}

func TestSetResult_InvalidValue(t *testing.T) {
	resolver := NewOutcomeResolver(mocks.NewCatalogRepository(t), nil, nil, zerolog.Nop())

	_, err := resolver.SetResult(context.Background(), "outcome-1", "DRAW")

	require.ErrorIs(t, err, model.ErrInvalidResult)
}

func TestSetResult_UnknownOutcome(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockCatalog.On("GetOutcome", ctx, "missing").Return(nil, model.ErrOutcomeNotFound)

	resolver := NewOutcomeResolver(mockCatalog, nil, nil, zerolog.Nop())

	_, err := resolver.SetResult(ctx, "missing", "WON")

	require.ErrorIs(t, err, model.ErrOutcomeNotFound)
}

func TestSetResult_LostCompareAndSet(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultPending, 0), nil)
	mockCatalog.On("SetOutcomeResult", ctx, "outcome-1", 0, model.ResultLost).Return(false, nil)

	resolver := NewOutcomeResolver(mockCatalog, nil, nil, zerolog.Nop())

	_, err := resolver.SetResult(ctx, "outcome-1", "LOST")

	require.ErrorIs(t, err, model.ErrResultChanged)
	assert.ErrorIs(t, err, model.ErrConcurrencyConflict)
}

func TestSetResult_CorrectionResettles(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockResettler := svcmocks.NewSettlementProcessor(t)

	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultWon, 1), nil).Once()
	mockCatalog.On("SetOutcomeResult", ctx, "outcome-1", 1, model.ResultLost).Return(true, nil)
	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultLost, 2), nil).Once()
	mockResettler.On("ResettleOutcome", ctx, "outcome-1").Return(&model.SettlementReport{BetsSettled: 3}, nil)

	resolver := NewOutcomeResolver(mockCatalog, mockResettler, nil, zerolog.Nop())

	resolution, err := resolver.SetResult(ctx, "outcome-1", "LOST")

	require.NoError(t, err)
	assert.True(t, resolution.Changed)
	assert.True(t, resolution.Correction)
	assert.Equal(t, model.ResultWon, resolution.Previous)
	require.NotNil(t, resolution.Resettled)
	assert.Equal(t, 3, resolution.Resettled.BetsSettled)
}

func TestSetResult_ResettleFailureKeepsResult(t *testing.T) {
	ctx := context.Background()

	mockCatalog := mocks.NewCatalogRepository(t)
	mockResettler := svcmocks.NewSettlementProcessor(t)

	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultWon, 1), nil).Once()
	mockCatalog.On("SetOutcomeResult", ctx, "outcome-1", 1, model.ResultVoid).Return(true, nil)
	mockCatalog.On("GetOutcome", ctx, "outcome-1").Return(outcomeAt(model.ResultVoid, 2), nil).Once()
	mockResettler.On("ResettleOutcome", ctx, "outcome-1").Return(nil, errors.New("connection reset"))

	resolver := NewOutcomeResolver(mockCatalog, mockResettler, nil, zerolog.Nop())

	resolution, err := resolver.SetResult(ctx, "outcome-1", "VOID")

	require.NoError(t, err)
	assert.Equal(t, model.ResultVoid, resolution.Outcome.Result)
	assert.Nil(t, resolution.Resettled)
}

func Test_ConcurrentSetResult_OneVersionBump(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const numCallers = 20

	_, outcomes := f.book(t, "2.00")

	barrier := make(chan struct{})
	errs := make(chan error, numCallers)

	var wg sync.WaitGroup
	wg.Add(numCallers)
	for i := 0; i < numCallers; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			_, err := f.resolver.SetResult(ctx, outcomes[0].ID, "WON")
			errs <- err
		}()
	}

	close(barrier)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, model.ErrResultChanged)
		}
	}

	outcome, err := f.store.GetOutcome(ctx, outcomes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.ResultWon, outcome.Result)
	assert.Equal(t, 1, outcome.ResultVersion)
	assert.NotNil(t, outcome.ResolvedAt)
}
