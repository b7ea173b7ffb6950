package pgsql

import (
	"context"
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

type PgxExpiryLogRepository struct {
	BaseRepository
}

// newPgxExpiryLogRepository creates a new repository for policy expiry logs.
func newPgxExpiryLogRepository(pool *pgxpool.Pool) portsrepo.ExpiryLogRepositoryFacade {
	return &PgxExpiryLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpiryLogRepositoryFacade = (*PgxExpiryLogRepository)(nil)

// FindUnloggedExpiringOn returns policies ending on runDate that have no log entry yet.
func (r *PgxExpiryLogRepository) FindUnloggedExpiringOn(ctx context.Context, runDate time.Time, limit int) ([]domain.InsurancePolicy, error) {
	query := `
		SELECT p.policy_id, p.car_id, p.provider, p.start_date, p.end_date, p.created_at
		FROM insurance_policies p
		WHERE p.end_date = $1
		  AND NOT EXISTS (SELECT 1 FROM policy_expiry_logs l WHERE l.policy_id = p.policy_id)
		ORDER BY p.policy_id
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, runDate, limit)
	if err != nil {
		return nil, dbError("failed to query expiring policies", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InsurancePolicy, error) {
		return scanPolicy(row)
	})
	if err != nil {
		return nil, dbError("failed to scan expiring policies", err)
	}
	return mapping.ToDomainPolicySlice(ms), nil
}

// CreateExpiryLog appends an expiry log entry.
func (r *PgxExpiryLogRepository) CreateExpiryLog(ctx context.Context, log domain.PolicyExpiryLog) error {
	m := mapping.ToModelExpiryLog(log)
	query := `
		INSERT INTO policy_expiry_logs (log_id, policy_id, logged_expiry_at)
		VALUES ($1, $2, $3);
	`
	if _, err := r.Pool.Exec(ctx, query, m.LogID, m.PolicyID, m.LoggedExpiryAt); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("expiry already logged for policy " + m.PolicyID)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("policy " + m.PolicyID)
		}
		return dbError(fmt.Sprintf("failed to create expiry log for policy %s", m.PolicyID), err)
	}
	return nil
}

// ListExpiryLogs returns the newest entries first.
func (r *PgxExpiryLogRepository) ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error) {
	query := `
		SELECT l.log_id, l.policy_id, l.logged_expiry_at, p.car_id, p.end_date
		FROM policy_expiry_logs l
		JOIN insurance_policies p ON p.policy_id = l.policy_id
		ORDER BY l.logged_expiry_at DESC, l.log_id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, dbError("failed to query expiry logs", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PolicyExpiryLog, error) {
		var m models.PolicyExpiryLog
		err := row.Scan(&m.LogID, &m.PolicyID, &m.LoggedExpiryAt, &m.CarID, &m.EndDate)
		return m, err
	})
	if err != nil {
		return nil, dbError("failed to scan expiry logs", err)
	}
	return mapping.ToDomainExpiryLogSlice(ms), nil
}
