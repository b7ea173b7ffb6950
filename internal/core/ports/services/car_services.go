package services

import (
	"context"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// CarSvc resolves the car every policy and claim operation is scoped to.
type CarSvc interface {
	// GetCarByID returns apperrors.ErrNotFound when the car does not exist.
	GetCarByID(ctx context.Context, carID string) (*domain.Car, error)
}
