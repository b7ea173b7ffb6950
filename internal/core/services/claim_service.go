package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/google/uuid"
)

// claimService implements the ClaimSvcFacade interface
type claimService struct {
	BaseService
	claimRepo portsrepo.ClaimRepositoryFacade
}

// NewClaimService creates the claim store service.
func NewClaimService(repo portsrepo.ClaimRepositoryFacade, options ...ServiceOption) portssvc.ClaimSvcFacade {
	return &claimService{
		BaseService: newBaseService(options...),
		claimRepo:   repo,
	}
}

var _ portssvc.ClaimSvcFacade = (*claimService)(nil)

func (s *claimService) CreateClaim(ctx context.Context, carID string, req dto.CreateClaimRequest) (*domain.Claim, error) {
	v := &apperrors.ValidationFailedError{}
	claimDate := domain.ParseDateField(v, "claim_date", req.ClaimDate)
	domain.ValidateClaimInto(v, claimDate, req.Description, req.Amount)
	if v.HasErrors() {
		s.LogWarn(ctx, v, "claim_rejected", slog.String("car_id", carID), requestIDAttr(ctx))
		return nil, v
	}

	claim := domain.Claim{
		ClaimID:     uuid.NewString(),
		CarID:       carID,
		ClaimDate:   claimDate,
		Description: domain.NormalizeDescription(req.Description),
		Amount:      *req.Amount,
		CreatedAt:   s.Now(),
	}

	if err := s.claimRepo.SaveClaim(ctx, claim); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			s.LogWarn(ctx, err, "claim_rejected", slog.String("car_id", carID), requestIDAttr(ctx))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to persist claim", slog.String("car_id", carID), requestIDAttr(ctx))
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	s.Metrics.IncrementClaimsCreated()
	s.LogInfo(ctx, "claim_created",
		slog.String("claim_id", claim.ClaimID),
		slog.String("car_id", carID),
		slog.String("claim_date", domain.FormatDate(claimDate)),
		slog.String("amount", claim.Amount.StringFixed(2)),
		requestIDAttr(ctx))
	return &claim, nil
}

func (s *claimService) GetClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Claim not found", slog.String("claim_id", claimID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get claim", slog.String("claim_id", claimID))
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return claim, nil
}

// ListClaimsByCar returns the car's claims ordered by claim date.
func (s *claimService) ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error) {
	claims, err := s.claimRepo.ListClaimsByCar(ctx, carID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list claims", slog.String("car_id", carID))
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}
