package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	"github.com/SscSPs/car_insurance_app/internal/models"
	"github.com/SscSPs/car_insurance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCarRepository struct {
	BaseRepository
}

// newPgxCarRepository creates a new repository for owners and cars.
func newPgxCarRepository(pool *pgxpool.Pool) portsrepo.CarRepositoryFacade {
	return &PgxCarRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CarRepositoryFacade = (*PgxCarRepository)(nil)

// SaveOwner inserts a new owner.
func (r *PgxCarRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	m := mapping.ToModelOwner(owner)
	query := `INSERT INTO owners (owner_id, owner_name, owner_email) VALUES ($1, $2, $3);`

	if _, err := r.Pool.Exec(ctx, query, m.OwnerID, m.OwnerName, m.OwnerEmail); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: owner %s", apperrors.ErrDuplicate, m.OwnerID)
		}
		return dbError(fmt.Sprintf("failed to save owner %s", m.OwnerID), err)
	}
	return nil
}

// SaveCar inserts a new car for an existing owner.
func (r *PgxCarRepository) SaveCar(ctx context.Context, car domain.Car) error {
	m := mapping.ToModelCar(car)
	query := `
		INSERT INTO cars (car_id, vin, make, model, year_of_manufacture, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query, m.CarID, m.VIN, m.Make, m.Model, m.YearOfManufacture, m.OwnerID)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: car %s (vin %s)", apperrors.ErrDuplicate, m.CarID, m.VIN)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("owner " + m.OwnerID)
		case pgCheckViolation:
			return apperrors.NewValidationFailedError("year_of_manufacture", "Ensure this value is between 1886 and 2100.")
		}
		return dbError(fmt.Sprintf("failed to save car %s", m.CarID), err)
	}
	return nil
}

// FindCarByID retrieves a car by its id.
func (r *PgxCarRepository) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	query := `
		SELECT car_id, vin, make, model, year_of_manufacture, owner_id
		FROM cars
		WHERE car_id = $1;
	`
	var m models.Car
	err := r.Pool.QueryRow(ctx, query, carID).Scan(
		&m.CarID,
		&m.VIN,
		&m.Make,
		&m.Model,
		&m.YearOfManufacture,
		&m.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("car " + carID)
		}
		return nil, dbError(fmt.Sprintf("failed to find car %s", carID), err)
	}

	car := mapping.ToDomainCar(m)
	return &car, nil
}
