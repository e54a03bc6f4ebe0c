package model

import (
	"errors"
	"fmt"
)

// Error classes. Every specific error below wraps exactly one of them, so
// callers can match either the precise cause or its class with errors.Is.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrTransientStorage    = errors.New("transient storage error")
)

var (
	ErrInvalidAmount          = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidTransactionType = fmt.Errorf("%w: invalid transaction type", ErrValidation)
	ErrInvalidStatus          = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidResult          = fmt.Errorf("%w: invalid outcome result", ErrValidation)
	ErrInvalidOdds            = fmt.Errorf("%w: odds must be greater than 1", ErrValidation)
	ErrInvalidRequest         = fmt.Errorf("%w: invalid request", ErrValidation)
	ErrInsufficientBalance    = fmt.Errorf("%w: insufficient balance", ErrValidation)
	ErrOutcomeUnresolved      = fmt.Errorf("%w: outcome not resolved", ErrValidation)
)

var (
	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)
	ErrBookNotFound        = fmt.Errorf("%w: book", ErrNotFound)
	ErrEventNotFound       = fmt.Errorf("%w: event", ErrNotFound)
	ErrOutcomeNotFound     = fmt.Errorf("%w: outcome", ErrNotFound)
	ErrBetNotFound         = fmt.Errorf("%w: bet", ErrNotFound)
)

var (
	ErrTerminalStatus = fmt.Errorf("%w: transaction status is terminal", ErrInvalidState)
	ErrOutcomeReopen  = fmt.Errorf("%w: resolved outcome cannot return to PENDING", ErrInvalidState)
	ErrBookNotActive  = fmt.Errorf("%w: book is not active", ErrInvalidState)
	ErrOutcomeClosed  = fmt.Errorf("%w: outcome already resolved", ErrInvalidState)
	ErrBetNotClaimed  = fmt.Errorf("%w: bet is not in SETTLING", ErrInvalidState)
)

var (
	ErrResultChanged        = fmt.Errorf("%w: outcome result changed concurrently", ErrConcurrencyConflict)
	ErrDuplicateTransaction = fmt.Errorf("%w: duplicate idempotency key", ErrConcurrencyConflict)
)
