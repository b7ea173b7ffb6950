package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// ExpiryLogReader defines read operations for policy expiry logs
type ExpiryLogReader interface {
	// FindUnloggedExpiringOn returns up to limit policies whose end_date equals
	// runDate and that have no expiry log entry yet, ordered by policy id.
	FindUnloggedExpiringOn(ctx context.Context, runDate time.Time, limit int) ([]domain.InsurancePolicy, error)

	// ListExpiryLogs returns the newest entries first, at most limit of them.
	ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error)
}

// ExpiryLogWriter defines write operations for policy expiry logs
type ExpiryLogWriter interface {
	// CreateExpiryLog appends an entry. An entry that already exists for the
	// policy yields apperrors.ErrConflict; a missing policy yields apperrors.ErrNotFound.
	CreateExpiryLog(ctx context.Context, log domain.PolicyExpiryLog) error
}

// ExpiryLogRepositoryFacade combines all expiry-log repository interfaces
type ExpiryLogRepositoryFacade interface {
	ExpiryLogReader
	ExpiryLogWriter
}
