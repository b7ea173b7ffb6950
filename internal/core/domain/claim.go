package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Claim validation messages.
const (
	MsgDescriptionEmpty  = "Description must not be empty."
	MsgAmountRequired    = "This field is required."
	MsgAmountNotPositive = "Ensure this value is greater than or equal to 0.01."
	MsgAmountPrecision   = "Ensure that there are no more than 2 decimal places."
	MsgAmountTooLarge    = "Ensure that there are no more than 12 digits in total."
)

// maxAmount is the first value that no longer fits NUMERIC(12,2).
var maxAmount = decimal.New(1, 10)

// Claim is an insurance claim filed against a car.
type Claim struct {
	ClaimID     string          `json:"claimID"`
	CarID       string          `json:"carID"`
	ClaimDate   time.Time       `json:"claimDate"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NormalizeDescription returns the description as it is stored.
func NormalizeDescription(s string) string {
	return strings.TrimSpace(s)
}

// ValidateClaim checks the field-level rules of a claim. A nil amount means it
// was not supplied.
func ValidateClaim(claimDate time.Time, description string, amount *decimal.Decimal) error {
	v := &apperrors.ValidationFailedError{}
	ValidateClaimInto(v, claimDate, description, amount)
	return v.OrNil()
}

// ValidateClaimInto is ValidateClaim recording into an existing collector.
func ValidateClaimInto(v *apperrors.ValidationFailedError, claimDate time.Time, description string, amount *decimal.Decimal) {
	checkYear(v, "claim_date", claimDate)

	if NormalizeDescription(description) == "" {
		v.Add("description", MsgDescriptionEmpty)
	}

	switch {
	case amount == nil:
		v.Add("amount", MsgAmountRequired)
	case !amount.IsPositive():
		v.Add("amount", MsgAmountNotPositive)
	case !amount.Equal(amount.Round(2)):
		v.Add("amount", MsgAmountPrecision)
	case amount.GreaterThanOrEqual(maxAmount):
		v.Add("amount", MsgAmountTooLarge)
	}
}
