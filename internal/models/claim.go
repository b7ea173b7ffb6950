package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim is the claims table row. Amount is NUMERIC(12,2).
type Claim struct {
	ClaimID     string          `json:"claimID"`
	CarID       string          `json:"carID"`
	ClaimDate   time.Time       `json:"claimDate"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
