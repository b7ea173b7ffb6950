package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
)

type validityService struct {
	BaseService
	policyRepo portsrepo.PolicyReader
}

// NewValidityService creates the coverage evaluator.
func NewValidityService(repo portsrepo.PolicyReader, options ...ServiceOption) portssvc.ValiditySvc {
	return &validityService{
		BaseService: newBaseService(options...),
		policyRepo:  repo,
	}
}

func (s *validityService) IsInsuredOn(ctx context.Context, carID string, date time.Time) (bool, error) {
	ok, err := s.policyRepo.ExistsCoveringPolicy(ctx, carID, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to evaluate insurance validity",
			slog.String("car_id", carID),
			slog.String("date", domain.FormatDate(date)))
		return false, fmt.Errorf("failed to evaluate insurance validity: %w", err)
	}
	return ok, nil
}

type historyService struct {
	BaseService
	policyRepo portsrepo.PolicyReader
	claimRepo  portsrepo.ClaimReader
}

// NewHistoryService creates the timeline aggregator.
func NewHistoryService(policyRepo portsrepo.PolicyReader, claimRepo portsrepo.ClaimReader, options ...ServiceOption) portssvc.HistorySvc {
	return &historyService{
		BaseService: newBaseService(options...),
		policyRepo:  policyRepo,
		claimRepo:   claimRepo,
	}
}

func (s *historyService) GetHistory(ctx context.Context, carID string) ([]domain.TimelineEntry, error) {
	policies, err := s.policyRepo.ListPoliciesByCar(ctx, carID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list policies for history", slog.String("car_id", carID))
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	claims, err := s.claimRepo.ListClaimsByCar(ctx, carID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list claims for history", slog.String("car_id", carID))
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return domain.MergeTimeline(policies, claims), nil
}

var (
	_ portssvc.ValiditySvc = (*validityService)(nil)
	_ portssvc.HistorySvc  = (*historyService)(nil)
)
