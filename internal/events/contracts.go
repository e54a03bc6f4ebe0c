package events

import "time"

// BetSettled is published on the bet_settled topic after a settlement is applied.
type BetSettled struct {
	BetID         string    `json:"bet_id"`
	UserID        string    `json:"user_id"`
	OutcomeID     string    `json:"outcome_id"`
	Result        string    `json:"result"`
	ResultVersion int       `json:"result_version"`
	Outcome       string    `json:"outcome"` // "settled" | "resettled"
	Stake         string    `json:"stake"`
	Amount        string    `json:"amount"` // credited amount, "0.00" on a loss
	TransactionID string    `json:"transaction_id,omitempty"`
	SettledAt     time.Time `json:"settled_at"`
}
