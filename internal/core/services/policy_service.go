package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/google/uuid"
)

// Reasons recorded on the policies rejected counter.
const (
	rejectValidation = "validation"
	rejectOverlap    = "overlap"
	rejectConflict   = "conflict"
	rejectNotFound   = "not_found"
)

// policyService implements the PolicySvcFacade interface
type policyService struct {
	BaseService
	policyRepo portsrepo.PolicyRepositoryFacade
}

// NewPolicyService creates the policy store service.
func NewPolicyService(repo portsrepo.PolicyRepositoryFacade, options ...ServiceOption) portssvc.PolicySvcFacade {
	return &policyService{
		BaseService: newBaseService(options...),
		policyRepo:  repo,
	}
}

var _ portssvc.PolicySvcFacade = (*policyService)(nil)

// parsePolicyInput applies the field rules shared by create and update.
func parsePolicyInput(provider, rawStart, rawEnd string) (string, time.Time, time.Time, error) {
	v := &apperrors.ValidationFailedError{}
	provider = strings.TrimSpace(provider)
	start := domain.ParseDateField(v, "start_date", rawStart)
	end := domain.ParseDateField(v, "end_date", rawEnd)
	domain.ValidatePolicyInto(v, provider, start, end)
	return provider, start, end, v.OrNil()
}

func (s *policyService) CreatePolicy(ctx context.Context, carID string, req dto.CreatePolicyRequest) (*domain.InsurancePolicy, error) {
	provider, start, end, err := parsePolicyInput(req.Provider, req.StartDate, req.EndDate)
	if err != nil {
		return nil, s.rejected(ctx, err, "create", carID, "")
	}

	policy := domain.InsurancePolicy{
		PolicyID:  uuid.NewString(),
		CarID:     carID,
		Provider:  provider,
		StartDate: start,
		EndDate:   end,
		CreatedAt: s.Now(),
	}

	if err := s.policyRepo.SavePolicy(ctx, policy); err != nil {
		return nil, s.rejected(ctx, err, "create", carID, policy.PolicyID)
	}

	s.Metrics.IncrementPoliciesCreated()
	s.LogInfo(ctx, "policy_created",
		slog.String("policy_id", policy.PolicyID),
		slog.String("car_id", carID),
		slog.String("start_date", domain.FormatDate(start)),
		slog.String("end_date", domain.FormatDate(end)),
		slog.String("provider", provider),
		requestIDAttr(ctx))
	return &policy, nil
}

func (s *policyService) UpdatePolicy(ctx context.Context, policyID string, req dto.UpdatePolicyRequest) (*domain.InsurancePolicy, error) {
	existing, err := s.GetPolicyByID(ctx, policyID)
	if err != nil {
		return nil, err
	}

	provider, start, end, err := parsePolicyInput(req.Provider, req.StartDate, req.EndDate)
	if err != nil {
		return nil, s.rejected(ctx, err, "update", existing.CarID, policyID)
	}

	updated := *existing
	updated.Provider = provider
	updated.StartDate = start
	updated.EndDate = end

	if err := s.policyRepo.UpdatePolicy(ctx, updated); err != nil {
		return nil, s.rejected(ctx, err, "update", existing.CarID, policyID)
	}

	s.Metrics.IncrementPoliciesUpdated()
	s.LogInfo(ctx, "policy_updated",
		slog.String("policy_id", policyID),
		slog.String("car_id", updated.CarID),
		slog.String("start_date", domain.FormatDate(start)),
		slog.String("end_date", domain.FormatDate(end)),
		requestIDAttr(ctx))
	return &updated, nil
}

func (s *policyService) GetPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error) {
	policy, err := s.policyRepo.FindPolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Policy not found", slog.String("policy_id", policyID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get policy", slog.String("policy_id", policyID))
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	return policy, nil
}

// rejected logs and counts a failed write and returns the error to hand back.
// Expected outcomes are logged at warn level and returned unwrapped so their
// field messages reach the caller.
func (s *policyService) rejected(ctx context.Context, err error, op, carID, policyID string) error {
	attrs := []any{
		slog.String("operation", op),
		slog.String("car_id", carID),
		slog.String("policy_id", policyID),
		requestIDAttr(ctx),
	}

	var reason string
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		reason = rejectValidation
		if v, ok := apperrors.AsValidationFailed(err); ok && hasOverlapMessage(v) {
			reason = rejectOverlap
		}
	case errors.Is(err, apperrors.ErrConflict):
		reason = rejectConflict
	case errors.Is(err, apperrors.ErrNotFound):
		reason = rejectNotFound
	default:
		s.LogError(ctx, err, "Failed to persist policy", attrs...)
		return fmt.Errorf("failed to %s policy: %w", op, err)
	}

	s.Metrics.IncrementPoliciesRejected(reason)
	s.LogWarn(ctx, err, "policy_rejected", append(attrs, slog.String("reason", reason))...)
	return err
}

func hasOverlapMessage(v *apperrors.ValidationFailedError) bool {
	for _, msg := range v.Fields[apperrors.NonFieldErrors] {
		if msg == domain.MsgPolicyOverlap {
			return true
		}
	}
	return false
}

// ListPoliciesByCar returns the car's policies ordered by start date.
func (s *policyService) ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error) {
	policies, err := s.policyRepo.ListPoliciesByCar(ctx, carID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list policies", slog.String("car_id", carID))
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return policies, nil
}
