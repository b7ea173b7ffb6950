package repositories

import (
	"context"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// ClaimReader defines read operations for claims
type ClaimReader interface {
	// FindClaimByID retrieves a claim by its id. Returns apperrors.ErrNotFound if absent.
	FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error)

	// ListClaimsByCar returns the car's claims ordered by claim_date, then created_at.
	ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error)
}

// ClaimWriter defines write operations for claims
type ClaimWriter interface {
	// SaveClaim persists a new claim. A missing car is apperrors.ErrNotFound.
	SaveClaim(ctx context.Context, claim domain.Claim) error
}

// ClaimRepositoryFacade combines all claim-related repository interfaces
type ClaimRepositoryFacade interface {
	ClaimReader
	ClaimWriter
}
