package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// PolicyReader defines read operations for insurance policies
type PolicyReader interface {
	// FindPolicyByID retrieves a policy by its id. Returns apperrors.ErrNotFound if absent.
	FindPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error)

	// ListPoliciesByCar returns the car's policies ordered by start_date, then created_at.
	ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error)

	// ExistsCoveringPolicy reports whether some policy of the car has start_date <= date <= end_date.
	ExistsCoveringPolicy(ctx context.Context, carID string, date time.Time) (bool, error)
}

// PolicyWriter defines write operations for insurance policies.
//
// Both methods check, under a per-car lock, that the interval shares no day
// with any other policy of the car. A detected overlap is returned as an
// apperrors.ValidationFailedError; a constraint violation raised by a
// concurrent writer is returned as apperrors.ErrConflict. A missing car is
// apperrors.ErrNotFound.
type PolicyWriter interface {
	SavePolicy(ctx context.Context, policy domain.InsurancePolicy) error
	UpdatePolicy(ctx context.Context, policy domain.InsurancePolicy) error
}

// PolicyRepositoryFacade combines all policy-related repository interfaces
type PolicyRepositoryFacade interface {
	PolicyReader
	PolicyWriter
}
