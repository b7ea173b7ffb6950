package dto

import (
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClaimRequest defines the data needed to file a claim against a car.
// Amount accepts both JSON numbers and strings.
type CreateClaimRequest struct {
	ClaimDate   string           `json:"claim_date" binding:"required,isodate"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"1250.50"`
}

// ClaimResponse defines the data returned for a claim.
type ClaimResponse struct {
	ID          string    `json:"id"`
	CarID       string    `json:"car"`
	ClaimDate   string    `json:"claim_date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount" example:"1250.50"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToClaimResponse converts a domain.Claim to ClaimResponse DTO
func ToClaimResponse(c *domain.Claim) ClaimResponse {
	return ClaimResponse{
		ID:          c.ClaimID,
		CarID:       c.CarID,
		ClaimDate:   domain.FormatDate(c.ClaimDate),
		Description: c.Description,
		Amount:      c.Amount.StringFixed(2),
		CreatedAt:   c.CreatedAt,
	}
}

// ToListClaimResponse converts a slice of domain.Claim to a slice of ClaimResponse DTOs
func ToListClaimResponse(claims []domain.Claim) []ClaimResponse {
	res := make([]ClaimResponse, len(claims))
	for i := range claims {
		res[i] = ToClaimResponse(&claims[i])
	}
	return res
}
