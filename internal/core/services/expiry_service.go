package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// Expiry detection and listing bounds.
const (
	DefaultExpiryBatchSize   = 500
	DefaultExpiryMaxBatches  = 1000
	DefaultExpiryLogListSize = 100
	MaxExpiryLogListSize     = 500
)

type expiryService struct {
	BaseService
	expiryRepo portsrepo.ExpiryLogRepositoryFacade
	batchSize  int
	maxBatches int
}

// NewExpiryService creates the expiry detector. Non-positive bounds fall
// back to the defaults.
func NewExpiryService(repo portsrepo.ExpiryLogRepositoryFacade, batchSize, maxBatches int, options ...ServiceOption) portssvc.ExpirySvcFacade {
	if batchSize <= 0 {
		batchSize = DefaultExpiryBatchSize
	}
	if maxBatches <= 0 {
		maxBatches = DefaultExpiryMaxBatches
	}
	return &expiryService{
		BaseService: newBaseService(options...),
		expiryRepo:  repo,
		batchSize:   batchSize,
		maxBatches:  maxBatches,
	}
}

var _ portssvc.ExpirySvcFacade = (*expiryService)(nil)

func (s *expiryService) DetectAndLogExpired(ctx context.Context, runDate time.Time) (int, error) {
	runDate = domain.DateOf(runDate)
	created := 0

	for batch := 0; ; batch++ {
		if batch >= s.maxBatches {
			s.GetLogger(ctx).Warn("policy_expiry_scan_bound_reached",
				slog.String("run_date", domain.FormatDate(runDate)),
				slog.Int("batches", batch),
				slog.Int("created", created))
			break
		}
		if err := ctx.Err(); err != nil {
			return created, err
		}

		policies, err := s.expiryRepo.FindUnloggedExpiringOn(ctx, runDate, s.batchSize)
		if err != nil {
			return created, fmt.Errorf("failed to find expiring policies: %w", err)
		}

		for _, p := range policies {
			entry := domain.PolicyExpiryLog{
				LogID:          uuid.NewString(),
				PolicyID:       p.PolicyID,
				LoggedExpiryAt: s.Now(),
			}
			err := s.expiryRepo.CreateExpiryLog(ctx, entry)
			switch {
			case err == nil:
				created++
				s.Metrics.AddExpiryLogsCreated(1)
				s.LogDebug(ctx, "policy_expiry_logged", slog.String("policy_id", p.PolicyID), slog.String("car_id", p.CarID))
			case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrNotFound):
				// Logged by a concurrent run, or the policy is gone.
				s.LogDebug(ctx, "policy_expiry_skipped", slog.String("policy_id", p.PolicyID), slog.String("error", err.Error()))
			default:
				return created, fmt.Errorf("failed to log expiry for policy %s: %w", p.PolicyID, err)
			}
		}

		if len(policies) < s.batchSize {
			break
		}
	}
	return created, nil
}

func (s *expiryService) ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error) {
	switch {
	case limit <= 0:
		limit = DefaultExpiryLogListSize
	case limit > MaxExpiryLogListSize:
		limit = MaxExpiryLogListSize
	}
	logs, err := s.expiryRepo.ListExpiryLogs(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expiry logs")
		return nil, fmt.Errorf("failed to list expiry logs: %w", err)
	}
	return logs, nil
}
