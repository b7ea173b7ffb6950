package models

import "time"

// PolicyExpiryLog is the policy_expiry_logs table row, optionally joined with
// the owning policy's car_id and end_date.
type PolicyExpiryLog struct {
	LogID          string     `json:"logID"`
	PolicyID       string     `json:"policyID"`
	LoggedExpiryAt time.Time  `json:"loggedExpiryAt"`
	CarID          *string    `json:"carID"`
	EndDate        *time.Time `json:"endDate"`
}
