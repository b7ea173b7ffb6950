package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	"github.com/SscSPs/car_insurance_app/internal/models"
	"github.com/SscSPs/car_insurance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const policyColumns = `policy_id, car_id, provider, start_date, end_date, created_at`

type PgxPolicyRepository struct {
	BaseRepository
}

// newPgxPolicyRepository creates a new repository for insurance policies.
func newPgxPolicyRepository(pool *pgxpool.Pool) portsrepo.PolicyRepositoryFacade {
	return &PgxPolicyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PolicyRepositoryFacade = (*PgxPolicyRepository)(nil)

func scanPolicy(row pgx.Row) (models.InsurancePolicy, error) {
	var m models.InsurancePolicy
	err := row.Scan(
		&m.PolicyID,
		&m.CarID,
		&m.Provider,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
	)
	return m, err
}

// FindPolicyByID retrieves a policy by its id.
func (r *PgxPolicyRepository) FindPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error) {
	query := `SELECT ` + policyColumns + ` FROM insurance_policies WHERE policy_id = $1;`

	m, err := scanPolicy(r.Pool.QueryRow(ctx, query, policyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("policy " + policyID)
		}
		return nil, dbError(fmt.Sprintf("failed to find policy %s", policyID), err)
	}

	policy := mapping.ToDomainPolicy(m)
	return &policy, nil
}

// ListPoliciesByCar returns the car's policies ordered by start date, then creation time.
func (r *PgxPolicyRepository) ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM insurance_policies
		WHERE car_id = $1
		ORDER BY start_date, created_at, policy_id;
	`
	rows, err := r.Pool.Query(ctx, query, carID)
	if err != nil {
		return nil, dbError(fmt.Sprintf("failed to query policies for car %s", carID), err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InsurancePolicy, error) {
		return scanPolicy(row)
	})
	if err != nil {
		return nil, dbError("failed to scan policies", err)
	}
	return mapping.ToDomainPolicySlice(ms), nil
}

// ExistsCoveringPolicy reports whether some policy of the car covers date.
func (r *PgxPolicyRepository) ExistsCoveringPolicy(ctx context.Context, carID string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM insurance_policies
			WHERE car_id = $1 AND start_date <= $2 AND end_date >= $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, carID, date).Scan(&exists); err != nil {
		return false, dbError(fmt.Sprintf("failed to evaluate coverage for car %s", carID), err)
	}
	return exists, nil
}

// SavePolicy inserts a policy after locking the car row and checking for overlaps.
func (r *PgxPolicyRepository) SavePolicy(ctx context.Context, policy domain.InsurancePolicy) error {
	m := mapping.ToModelPolicy(policy)
	return r.InTx(ctx, func(tx pgx.Tx) error {
		if err := lockCar(ctx, tx, m.CarID); err != nil {
			return err
		}
		if err := checkNoOverlap(ctx, tx, m); err != nil {
			return err
		}

		query := `
			INSERT INTO insurance_policies (policy_id, car_id, provider, start_date, end_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		_, err := tx.Exec(ctx, query, m.PolicyID, m.CarID, m.Provider, m.StartDate, m.EndDate, m.CreatedAt)
		return policyWriteError(err, m)
	})
}

// UpdatePolicy replaces provider and interval of an existing policy. The car
// and creation time are left untouched.
func (r *PgxPolicyRepository) UpdatePolicy(ctx context.Context, policy domain.InsurancePolicy) error {
	m := mapping.ToModelPolicy(policy)
	return r.InTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT car_id FROM insurance_policies WHERE policy_id = $1;`, m.PolicyID).Scan(&m.CarID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("policy " + m.PolicyID)
			}
			return dbError(fmt.Sprintf("failed to find policy %s", m.PolicyID), err)
		}
		if err := lockCar(ctx, tx, m.CarID); err != nil {
			return err
		}
		if err := checkNoOverlap(ctx, tx, m); err != nil {
			return err
		}

		query := `
			UPDATE insurance_policies
			SET provider = $2, start_date = $3, end_date = $4
			WHERE policy_id = $1;
		`
		tag, err := tx.Exec(ctx, query, m.PolicyID, m.Provider, m.StartDate, m.EndDate)
		if err != nil {
			return policyWriteError(err, m)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("policy " + m.PolicyID)
		}
		return nil
	})
}

// lockCar serialises policy writers of one car for the rest of the transaction.
func lockCar(ctx context.Context, tx pgx.Tx, carID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT car_id FROM cars WHERE car_id = $1 FOR UPDATE;`, carID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("car " + carID)
		}
		return dbError(fmt.Sprintf("failed to lock car %s", carID), err)
	}
	return nil
}

func checkNoOverlap(ctx context.Context, tx pgx.Tx, m models.InsurancePolicy) error {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM insurance_policies
			WHERE car_id = $1 AND policy_id <> $2 AND start_date <= $4 AND end_date >= $3
		);
	`
	var overlaps bool
	if err := tx.QueryRow(ctx, query, m.CarID, m.PolicyID, m.StartDate, m.EndDate).Scan(&overlaps); err != nil {
		return dbError("failed to check policy overlap", err)
	}
	if overlaps {
		return apperrors.NewValidationFailedError(apperrors.NonFieldErrors, domain.MsgPolicyOverlap)
	}
	return nil
}

func policyWriteError(err error, m models.InsurancePolicy) error {
	if err == nil {
		return nil
	}
	switch pgErrorCode(err) {
	case pgExclusionViolation:
		return apperrors.NewConflictError(fmt.Sprintf("policy %s overlaps a concurrently written policy of car %s", m.PolicyID, m.CarID))
	case pgUniqueViolation:
		return fmt.Errorf("%w: policy %s", apperrors.ErrDuplicate, m.PolicyID)
	case pgForeignKeyViolation:
		return apperrors.NewNotFoundError("car " + m.CarID)
	case pgCheckViolation:
		return apperrors.NewValidationError(fmt.Sprintf("policy %s violates a table constraint", m.PolicyID))
	}
	return dbError(fmt.Sprintf("failed to write policy %s", m.PolicyID), err)
}
