package dto

// InsuranceValidityResponse answers whether a car was insured on a date.
type InsuranceValidityResponse struct {
	CarID string `json:"carId"`
	Date  string `json:"date" example:"2025-06-01"`
	Valid bool   `json:"valid"`
}
