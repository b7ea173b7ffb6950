package services

import (
	"context"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// ExpiryDetectorSvc writes expiry log entries.
type ExpiryDetectorSvc interface {
	// DetectAndLogExpired logs every policy ending on runDate that has no
	// entry yet and returns how many entries it created. Entries written
	// concurrently by another run are skipped. Safe to call repeatedly.
	DetectAndLogExpired(ctx context.Context, runDate time.Time) (int, error)
}

// ExpiryLogReaderSvc lists expiry log entries.
type ExpiryLogReaderSvc interface {
	ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error)
}

// ExpirySvcFacade combines all expiry-related service interfaces
type ExpirySvcFacade interface {
	ExpiryDetectorSvc
	ExpiryLogReaderSvc
}
