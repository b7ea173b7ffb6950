package services

import (
	"context"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// ValiditySvc answers coverage questions. The date is expected to be a
// validated calendar date; no further checks are made.
type ValiditySvc interface {
	IsInsuredOn(ctx context.Context, carID string, date time.Time) (bool, error)
}

// HistorySvc builds a car's combined policy and claim timeline.
type HistorySvc interface {
	GetHistory(ctx context.Context, carID string) ([]domain.TimelineEntry, error)
}
