package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sportsbook-settlement/internal/model"
	mocks "sportsbook-settlement/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecoveryWorker_ResumesOnTick(t *testing.T) {
	scheduler := mocks.NewSettlementScheduler(t)

	called := make(chan struct{})
	var once sync.Once
	scheduler.On("ResumeStale", mock.Anything).
		Run(func(args mock.Arguments) { once.Do(func() { close(called) }) }).
		Return(&model.SettlementReport{BetsSettled: 1}, nil)

	w := NewRecoveryWorker(scheduler, 5*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("recovery did not run")
	}
	w.Stop()
}

func TestRecoveryWorker_KeepsRunningAfterError(t *testing.T) {
	scheduler := mocks.NewSettlementScheduler(t)

	calls := make(chan struct{}, 16)
	scheduler.On("ResumeStale", mock.Anything).
		Run(func(args mock.Arguments) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(nil, model.ErrTransientStorage)

	w := NewRecoveryWorker(scheduler, 5*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("recovery stopped after a failed run")
		}
	}
	w.Stop()
}

func TestRecoveryWorker_StopsWithContext(t *testing.T) {
	scheduler := mocks.NewSettlementScheduler(t)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewRecoveryWorker(scheduler, time.Hour, zerolog.Nop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit on context cancel")
	}
}

func TestNewSettlementWorker_InvalidSchedule(t *testing.T) {
	_, err := NewSettlementWorker(mocks.NewSettlementScheduler(t), "every now and then", time.Minute, zerolog.Nop())

	assert.Error(t, err)
}

func TestSettlementWorker_RunAppliesTimeout(t *testing.T) {
	scheduler := mocks.NewSettlementScheduler(t)

	scheduler.On("CheckAndSettleCompletedBooks", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(&model.SettlementReport{BooksSettled: 1, BetsSettled: 4}, nil).Once()

	w, err := NewSettlementWorker(scheduler, "@every 1h", time.Minute, zerolog.Nop())
	require.NoError(t, err)

	w.run()
}

func TestSettlementWorker_RunInheritsStartContext(t *testing.T) {
	scheduler := mocks.NewSettlementScheduler(t)

	scheduler.On("CheckAndSettleCompletedBooks", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok && errors.Is(ctx.Err(), context.Canceled)
	})).Return(nil, context.Canceled).Once()

	w, err := NewSettlementWorker(scheduler, "@every 1h", time.Minute, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	w.run()
	w.Stop()
}

func TestSettlementWorker_RunSurvivesError(t *testing.T) {
	scheduler := mocks.NewSettlementScheduler(t)

	scheduler.On("CheckAndSettleCompletedBooks", mock.Anything).
		Return(&model.SettlementReport{BetsFailed: 2}, model.ErrTransientStorage).Once()

	w, err := NewSettlementWorker(scheduler, "@every 1h", 0, zerolog.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, w.run)
}

func TestSettlementWorker_StartStop(t *testing.T) {
	w, err := NewSettlementWorker(mocks.NewSettlementScheduler(t), "@every 1h", time.Minute, zerolog.Nop())
	require.NoError(t, err)

	w.Start(context.Background())
	w.Stop()
}
