package dto

import (
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// ExpiryLogResponse defines the data returned for a policy expiry log entry.
type ExpiryLogResponse struct {
	ID             string    `json:"id"`
	PolicyID       string    `json:"policy"`
	CarID          string    `json:"car,omitempty"`
	EndDate        string    `json:"end_date,omitempty"`
	LoggedExpiryAt time.Time `json:"logged_expiry_at"`
}

// ToExpiryLogResponse converts a domain.PolicyExpiryLog to ExpiryLogResponse DTO
func ToExpiryLogResponse(l *domain.PolicyExpiryLog) ExpiryLogResponse {
	res := ExpiryLogResponse{
		ID:             l.LogID,
		PolicyID:       l.PolicyID,
		CarID:          l.CarID,
		LoggedExpiryAt: l.LoggedExpiryAt,
	}
	if !l.EndDate.IsZero() {
		res.EndDate = domain.FormatDate(l.EndDate)
	}
	return res
}

// ToListExpiryLogResponse converts a slice of domain.PolicyExpiryLog to a slice of ExpiryLogResponse DTOs
func ToListExpiryLogResponse(logs []domain.PolicyExpiryLog) []ExpiryLogResponse {
	res := make([]ExpiryLogResponse, len(logs))
	for i := range logs {
		res[i] = ToExpiryLogResponse(&logs[i])
	}
	return res
}
