package pgsql

import (
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the Postgres-backed repositories on one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CarRepo:       newPgxCarRepository(dbPool),
		PolicyRepo:    newPgxPolicyRepository(dbPool),
		ClaimRepo:     newPgxClaimRepository(dbPool),
		ExpiryLogRepo: newPgxExpiryLogRepository(dbPool),
	}
}
