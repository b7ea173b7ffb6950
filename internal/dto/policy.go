package dto

import (
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// CreatePolicyRequest defines the data needed to create a policy for a car.
type CreatePolicyRequest struct {
	Provider  string `json:"provider" binding:"max=100"`
	StartDate string `json:"start_date" binding:"required,isodate"`
	EndDate   string `json:"end_date" binding:"required,isodate"`
}

// UpdatePolicyRequest replaces provider and interval of an existing policy.
type UpdatePolicyRequest struct {
	Provider  string `json:"provider" binding:"max=100"`
	StartDate string `json:"start_date" binding:"required,isodate"`
	EndDate   string `json:"end_date" binding:"required,isodate"`
}

// PolicyResponse defines the data returned for a policy.
type PolicyResponse struct {
	ID        string    `json:"id"`
	CarID     string    `json:"car"`
	Provider  string    `json:"provider"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPolicyResponse converts a domain.InsurancePolicy to PolicyResponse DTO
func ToPolicyResponse(p *domain.InsurancePolicy) PolicyResponse {
	return PolicyResponse{
		ID:        p.PolicyID,
		CarID:     p.CarID,
		Provider:  p.Provider,
		StartDate: domain.FormatDate(p.StartDate),
		EndDate:   domain.FormatDate(p.EndDate),
		CreatedAt: p.CreatedAt,
	}
}

// ToListPolicyResponse converts a slice of domain.InsurancePolicy to a slice of PolicyResponse DTOs
func ToListPolicyResponse(policies []domain.InsurancePolicy) []PolicyResponse {
	res := make([]PolicyResponse, len(policies))
	for i := range policies {
		res[i] = ToPolicyResponse(&policies[i])
	}
	return res
}
