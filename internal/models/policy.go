package models

import "time"

// InsurancePolicy is the insurance_policies table row. Dates are DATE columns.
type InsurancePolicy struct {
	PolicyID  string    `json:"policyID"`
	CarID     string    `json:"carID"`
	Provider  string    `json:"provider"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}
