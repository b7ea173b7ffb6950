package domain

import "time"

// PolicyExpiryLog records that a policy's expiry was observed. There is at
// most one entry per policy and entries are never updated.
type PolicyExpiryLog struct {
	LogID          string    `json:"logID"`
	PolicyID       string    `json:"policyID"`
	LoggedExpiryAt time.Time `json:"loggedExpiryAt"`

	// Populated on reads from the owning policy.
	CarID   string    `json:"carID,omitempty"`
	EndDate time.Time `json:"endDate,omitempty"`
}
