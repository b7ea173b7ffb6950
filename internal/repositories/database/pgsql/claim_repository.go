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

const claimColumns = `claim_id, car_id, claim_date, description, amount, created_at`

type PgxClaimRepository struct {
	BaseRepository
}

// newPgxClaimRepository creates a new repository for claims.
func newPgxClaimRepository(pool *pgxpool.Pool) portsrepo.ClaimRepositoryFacade {
	return &PgxClaimRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClaimRepositoryFacade = (*PgxClaimRepository)(nil)

func scanClaim(row pgx.Row) (models.Claim, error) {
	var m models.Claim
	err := row.Scan(
		&m.ClaimID,
		&m.CarID,
		&m.ClaimDate,
		&m.Description,
		&m.Amount,
		&m.CreatedAt,
	)
	return m, err
}

// SaveClaim inserts a new claim.
func (r *PgxClaimRepository) SaveClaim(ctx context.Context, claim domain.Claim) error {
	m := mapping.ToModelClaim(claim)
	query := `
		INSERT INTO claims (claim_id, car_id, claim_date, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ClaimID, m.CarID, m.ClaimDate, m.Description, m.Amount, m.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("car " + m.CarID)
		case pgUniqueViolation:
			return fmt.Errorf("%w: claim %s", apperrors.ErrDuplicate, m.ClaimID)
		case pgCheckViolation:
			return apperrors.NewValidationError(fmt.Sprintf("claim %s violates a table constraint", m.ClaimID))
		}
		return dbError(fmt.Sprintf("failed to save claim %s", m.ClaimID), err)
	}
	return nil
}

// FindClaimByID retrieves a claim by its id.
func (r *PgxClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE claim_id = $1;`

	m, err := scanClaim(r.Pool.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("claim " + claimID)
		}
		return nil, dbError(fmt.Sprintf("failed to find claim %s", claimID), err)
	}

	claim := mapping.ToDomainClaim(m)
	return &claim, nil
}

// ListClaimsByCar returns the car's claims ordered by claim date, then creation time.
func (r *PgxClaimRepository) ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims
		WHERE car_id = $1
		ORDER BY claim_date, created_at, claim_id;
	`
	rows, err := r.Pool.Query(ctx, query, carID)
	if err != nil {
		return nil, dbError(fmt.Sprintf("failed to query claims for car %s", carID), err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Claim, error) {
		return scanClaim(row)
	})
	if err != nil {
		return nil, dbError("failed to scan claims", err)
	}
	return mapping.ToDomainClaimSlice(ms), nil
}
