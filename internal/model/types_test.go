package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in      string
		want    TransactionType
		wantErr bool
	}{
		{"deposit", TypeDeposit, false},
		{" Withdrawal ", TypeWithdrawal, false},
		{"STAKE", TypeStake, false},
		{"payout", TypePayout, false},
		{"refund", TypeRefund, false},
		{"bonus", TypeBonus, false},
		{"win", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransactionType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransactionType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionType_CreditDebitArePartition(t *testing.T) {
	for _, tt := range []TransactionType{TypeDeposit, TypeWithdrawal, TypeStake, TypePayout, TypeRefund, TypeBonus} {
		assert.NotEqual(t, tt.IsCredit(), tt.IsDebit(), tt)
	}
	assert.True(t, TypeRefund.IsCredit())
	assert.True(t, TypeStake.IsDebit())
	assert.False(t, TransactionType("unknown").IsCredit())
	assert.False(t, TransactionType("unknown").IsDebit())
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusSuccess.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())

	_, err := ParseTransactionStatus("processed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseOutcomeResult(t *testing.T) {
	got, err := ParseOutcomeResult("won")
	require.NoError(t, err)
	assert.Equal(t, ResultWon, got)
	assert.True(t, got.IsTerminal())

	got, err = ParseOutcomeResult("PENDING")
	require.NoError(t, err)
	assert.False(t, got.IsTerminal())

	_, err = ParseOutcomeResult("DRAW")
	assert.ErrorIs(t, err, ErrInvalidResult)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseBookAndBetStatus(t *testing.T) {
	book, err := ParseBookStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, BookCompleted, book)

	bet, err := ParseBetStatus("settling")
	require.NoError(t, err)
	assert.Equal(t, BetSettling, bet)

	_, err = ParseBookStatus("CLOSED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSettlementOutcome_Applied(t *testing.T) {
	assert.True(t, OutcomeSettled.Applied())
	assert.True(t, OutcomeResettled.Applied())
	assert.False(t, OutcomeAlreadySettled.Applied())
	assert.False(t, OutcomeAlreadySettling.Applied())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(" Admin"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole("root"))
	assert.Equal(t, RoleUser, ParseRole(""))
}

func TestErrors_WrapExactlyOneClass(t *testing.T) {
	classes := []error{ErrValidation, ErrNotFound, ErrInvalidState, ErrConcurrencyConflict, ErrTransientStorage}
	specific := []error{
		ErrInvalidAmount, ErrInvalidTransactionType, ErrInvalidStatus, ErrInvalidResult, ErrInvalidOdds,
		ErrInvalidRequest, ErrInsufficientBalance, ErrOutcomeUnresolved,
		ErrUserNotFound, ErrTransactionNotFound, ErrBookNotFound, ErrEventNotFound, ErrOutcomeNotFound, ErrBetNotFound,
		ErrTerminalStatus, ErrOutcomeReopen, ErrBookNotActive, ErrOutcomeClosed, ErrBetNotClaimed,
		ErrResultChanged, ErrDuplicateTransaction,
	}

	for _, err := range specific {
		matched := 0
		for _, class := range classes {
			if errors.Is(err, class) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, err.Error())
	}
}

func TestSettlementReport_Add(t *testing.T) {
	r := &SettlementReport{BooksSettled: 1, BetsSettled: 2}
	r.Add(&SettlementReport{BooksSettled: 1, BetsSettled: 3, BetsFailed: 1})
	r.Add(nil)

	assert.Equal(t, SettlementReport{BooksSettled: 2, BetsSettled: 5, BetsFailed: 1}, *r)
}
