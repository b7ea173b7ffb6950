package repositories

import (
	"context"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// CarReader defines read operations for car data
type CarReader interface {
	// FindCarByID retrieves a car by its id. Returns apperrors.ErrNotFound if absent.
	FindCarByID(ctx context.Context, carID string) (*domain.Car, error)
}

// CarWriter defines write operations for owners and cars. Only seed tooling
// and tests create them; the HTTP surface does not.
type CarWriter interface {
	SaveOwner(ctx context.Context, owner domain.Owner) error
	SaveCar(ctx context.Context, car domain.Car) error
}

// CarRepositoryFacade combines all car-related repository interfaces
type CarRepositoryFacade interface {
	CarReader
	CarWriter
}
