package model

import "strings"

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeStake      TransactionType = "stake"
	TypePayout     TransactionType = "payout"
	TypeRefund     TransactionType = "refund"
	TypeBonus      TransactionType = "bonus"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeDeposit:
		return TypeDeposit, nil
	case TypeWithdrawal:
		return TypeWithdrawal, nil
	case TypeStake:
		return TypeStake, nil
	case TypePayout:
		return TypePayout, nil
	case TypeRefund:
		return TypeRefund, nil
	case TypeBonus:
		return TypeBonus, nil
	default:
		return "", ErrInvalidTransactionType
	}
}

// IsCredit reports whether a successful transaction of this type adds to the balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TypeDeposit, TypePayout, TypeRefund, TypeBonus:
		return true
	case TypeWithdrawal, TypeStake:
		return false
	default:
		return false
	}
}

func (t TransactionType) IsDebit() bool {
	switch t {
	case TypeWithdrawal, TypeStake:
		return true
	case TypeDeposit, TypePayout, TypeRefund, TypeBonus:
		return false
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusSuccess:
		return StatusSuccess, nil
	case StatusFailed:
		return StatusFailed, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailed:
		return true
	case StatusPending:
		return false
	default:
		return false
	}
}

func (s TransactionStatus) String() string {
	return string(s)
}

type OutcomeResult string

const (
	ResultPending OutcomeResult = "PENDING"
	ResultWon     OutcomeResult = "WON"
	ResultLost    OutcomeResult = "LOST"
	ResultVoid    OutcomeResult = "VOID"
)

func ParseOutcomeResult(s string) (OutcomeResult, error) {
	switch OutcomeResult(strings.ToUpper(strings.TrimSpace(s))) {
	case ResultPending:
		return ResultPending, nil
	case ResultWon:
		return ResultWon, nil
	case ResultLost:
		return ResultLost, nil
	case ResultVoid:
		return ResultVoid, nil
	default:
		return "", ErrInvalidResult
	}
}

func (r OutcomeResult) IsTerminal() bool {
	switch r {
	case ResultWon, ResultLost, ResultVoid:
		return true
	case ResultPending:
		return false
	default:
		return false
	}
}

func (r OutcomeResult) String() string {
	return string(r)
}

type BetStatus string

const (
	BetPending  BetStatus = "PENDING"
	BetSettling BetStatus = "SETTLING"
	BetSettled  BetStatus = "SETTLED"
)

func ParseBetStatus(s string) (BetStatus, error) {
	switch BetStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case BetPending:
		return BetPending, nil
	case BetSettling:
		return BetSettling, nil
	case BetSettled:
		return BetSettled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s BetStatus) String() string {
	return string(s)
}

type BookStatus string

const (
	BookActive    BookStatus = "ACTIVE"
	BookCompleted BookStatus = "COMPLETED"
	BookInactive  BookStatus = "INACTIVE"
)

func ParseBookStatus(s string) (BookStatus, error) {
	switch BookStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case BookActive:
		return BookActive, nil
	case BookCompleted:
		return BookCompleted, nil
	case BookInactive:
		return BookInactive, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s BookStatus) String() string {
	return string(s)
}

// SettlementOutcome is what a single settle call did to a bet.
type SettlementOutcome string

const (
	OutcomeSettled         SettlementOutcome = "settled"
	OutcomeResettled       SettlementOutcome = "resettled"
	OutcomeAlreadySettled  SettlementOutcome = "already_settled"
	OutcomeAlreadySettling SettlementOutcome = "already_settling"
)

// Applied reports whether the call changed the bet.
func (o SettlementOutcome) Applied() bool {
	switch o {
	case OutcomeSettled, OutcomeResettled:
		return true
	case OutcomeAlreadySettled, OutcomeAlreadySettling:
		return false
	default:
		return false
	}
}

func (o SettlementOutcome) String() string {
	return string(o)
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) Role {
	if Role(strings.ToLower(strings.TrimSpace(s))) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Ledger categories written by the core.
const (
	CategoryBetStake      = "bet-stake"
	CategoryBetSettlement = "bet-settlement"
	CategoryBetCorrection = "bet-correction"
)
