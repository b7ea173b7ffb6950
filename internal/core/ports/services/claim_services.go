package services

import (
	"context"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/dto"
)

// ClaimReaderSvc defines read operations for claims
type ClaimReaderSvc interface {
	GetClaimByID(ctx context.Context, claimID string) (*domain.Claim, error)
	ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error)
}

// ClaimWriterSvc defines write operations for claims
type ClaimWriterSvc interface {
	CreateClaim(ctx context.Context, carID string, req dto.CreateClaimRequest) (*domain.Claim, error)
}

// ClaimSvcFacade combines all claim-related service interfaces
type ClaimSvcFacade interface {
	ClaimReaderSvc
	ClaimWriterSvc
}
