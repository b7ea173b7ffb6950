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
)

type carService struct {
	BaseService
	carRepo portsrepo.CarReader
}

// NewCarService creates the car lookup service.
func NewCarService(repo portsrepo.CarReader, options ...ServiceOption) portssvc.CarSvc {
	return &carService{
		BaseService: newBaseService(options...),
		carRepo:     repo,
	}
}

var _ portssvc.CarSvc = (*carService)(nil)

func (s *carService) GetCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	car, err := s.carRepo.FindCarByID(ctx, carID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Car not found", slog.String("car_id", carID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get car", slog.String("car_id", carID))
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return car, nil
}
