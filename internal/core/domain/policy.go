package domain

import (
	"time"
	"unicode/utf8"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
)

// MaxProviderLength bounds InsurancePolicy.Provider, counted in characters.
const MaxProviderLength = 100

// Policy validation messages.
const (
	MsgEndBeforeStart  = "end_date must be >= start_date"
	MsgPolicyOverlap   = "Policy interval overlaps an existing policy for this car."
	MsgProviderTooLong = "Ensure this field has no more than 100 characters."
)

// InsurancePolicy covers a car for every calendar day in [StartDate, EndDate].
type InsurancePolicy struct {
	PolicyID  string    `json:"policyID"`
	CarID     string    `json:"carID"`
	Provider  string    `json:"provider"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// Covers reports whether d falls inside the policy interval, both ends inclusive.
func (p InsurancePolicy) Covers(d time.Time) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// Overlaps reports whether [start, end] shares at least one day with the policy.
func (p InsurancePolicy) Overlaps(start, end time.Time) bool {
	return !p.StartDate.After(end) && !p.EndDate.Before(start)
}

// ValidatePolicy checks the field-level rules of a policy. Dates already
// rejected while parsing (zero values) are skipped. The overlap rule needs the
// car's other policies and is enforced by the store.
func ValidatePolicy(provider string, start, end time.Time) error {
	v := &apperrors.ValidationFailedError{}
	ValidatePolicyInto(v, provider, start, end)
	return v.OrNil()
}

// ValidatePolicyInto is ValidatePolicy recording into an existing collector.
func ValidatePolicyInto(v *apperrors.ValidationFailedError, provider string, start, end time.Time) {
	if utf8.RuneCountInString(provider) > MaxProviderLength {
		v.Add("provider", MsgProviderTooLong)
	}
	startOK := checkYear(v, "start_date", start)
	endOK := checkYear(v, "end_date", end)
	if startOK && endOK && end.Before(start) {
		v.Add("end_date", MsgEndBeforeStart)
	}
}
