package services

import (
	"context"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/dto"
)

// PolicyReaderSvc defines read operations for policies
type PolicyReaderSvc interface {
	GetPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error)
	ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error)
}

// PolicyWriterSvc defines write operations for policies
type PolicyWriterSvc interface {
	// CreatePolicy validates and persists a new policy for the car. Field and
	// overlap failures are returned as apperrors.ValidationFailedError.
	CreatePolicy(ctx context.Context, carID string, req dto.CreatePolicyRequest) (*domain.InsurancePolicy, error)

	// UpdatePolicy replaces provider and interval, re-validating against every
	// other policy of the same car.
	UpdatePolicy(ctx context.Context, policyID string, req dto.UpdatePolicyRequest) (*domain.InsurancePolicy, error)
}

// PolicySvcFacade combines all policy-related service interfaces
type PolicySvcFacade interface {
	PolicyReaderSvc
	PolicyWriterSvc
}
