package model

import "time"

type TransactionRequest struct {
	Type           string `json:"type" binding:"required,oneof=deposit withdrawal bonus" example:"deposit" enums:"deposit,withdrawal,bonus"`
	Amount         string `json:"amount" binding:"required" example:"100.00"`
	Status         string `json:"status" binding:"omitempty,oneof=pending success failed" example:"success" enums:"pending,success,failed"`
	Description    string `json:"description" example:"card top-up"`
	IdempotencyKey string `json:"idempotency_key" binding:"omitempty,max=200" example:"topup-550e8400"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending success failed" example:"success" enums:"pending,success,failed"`
}

type CreateBookRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Premier League matchday 12"`
}

type CreateEventRequest struct {
	Name     string     `json:"name" binding:"required,max=255" example:"Arsenal v Chelsea"`
	HomeTeam *string    `json:"home_team,omitempty" example:"Arsenal"`
	AwayTeam *string    `json:"away_team,omitempty" example:"Chelsea"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
}

type CreateOutcomeRequest struct {
	Name  string `json:"name" binding:"required,max=255" example:"Home win"`
	Odds  string `json:"odds" binding:"required" example:"2.50"`
	Order int    `json:"order" example:"1"`
}

type SetResultRequest struct {
	Result string `json:"result" binding:"required" example:"WON" enums:"PENDING,WON,LOST,VOID"`
}

type PlaceBetRequest struct {
	Stake          string `json:"stake" binding:"required" example:"100.00"`
	IdempotencyKey string `json:"idempotency_key" binding:"omitempty,max=200" example:"slip-7f3a"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}

type SettlementTriggerResponse struct {
	Success bool              `json:"success" example:"true"`
	Message string            `json:"message" example:"Settlement run completed"`
	Counts  *SettlementReport `json:"counts,omitempty"`
}

type SettlementStatusResponse struct {
	LastRun *SettlementRun `json:"last_run"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id" example:"user-1"`
	Balance string `json:"balance" example:"100.50"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type StatusHistoryResponse struct {
	TransactionID string                `json:"transaction_id"`
	History       []*StatusHistoryEntry `json:"history"`
}
