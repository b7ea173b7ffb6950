package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
)

// Store keeps every table in process memory behind one lock. It implements
// all repository facades and enforces the same rules as the Postgres schema:
// referential integrity, no overlapping policies per car and one expiry log
// per policy.
type Store struct {
	mu sync.RWMutex

	owners   map[string]domain.Owner
	cars     map[string]domain.Car
	policies map[string]domain.InsurancePolicy
	claims   map[string]domain.Claim
	logs     map[string]domain.PolicyExpiryLog // keyed by policy id
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		owners:   make(map[string]domain.Owner),
		cars:     make(map[string]domain.Car),
		policies: make(map[string]domain.InsurancePolicy),
		claims:   make(map[string]domain.Claim),
		logs:     make(map[string]domain.PolicyExpiryLog),
	}
}

// NewRepositoryProvider wires one Store into every repository slot.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CarRepo:       s,
		PolicyRepo:    s,
		ClaimRepo:     s,
		ExpiryLogRepo: s,
	}
}

var (
	_ portsrepo.CarRepositoryFacade       = (*Store)(nil)
	_ portsrepo.PolicyRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ClaimRepositoryFacade     = (*Store)(nil)
	_ portsrepo.ExpiryLogRepositoryFacade = (*Store)(nil)
)

// --- cars ---

func (s *Store) SaveOwner(ctx context.Context, owner domain.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(owner.OwnerID) == "" {
		return apperrors.NewValidationFailedError("owner_id", "This field is required.")
	}
	if _, exists := s.owners[owner.OwnerID]; exists {
		return fmt.Errorf("%w: owner %s", apperrors.ErrDuplicate, owner.OwnerID)
	}
	s.owners[owner.OwnerID] = owner
	return nil
}

func (s *Store) SaveCar(ctx context.Context, car domain.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(car.CarID) == "" {
		return apperrors.NewValidationFailedError("car_id", "This field is required.")
	}
	if _, ok := s.owners[car.OwnerID]; !ok {
		return apperrors.NewNotFoundError("owner " + car.OwnerID)
	}
	if _, exists := s.cars[car.CarID]; exists {
		return fmt.Errorf("%w: car %s", apperrors.ErrDuplicate, car.CarID)
	}
	for _, c := range s.cars {
		if c.VIN == car.VIN {
			return fmt.Errorf("%w: vin %s", apperrors.ErrDuplicate, car.VIN)
		}
	}
	s.cars[car.CarID] = car
	return nil
}

func (s *Store) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.cars[carID]
	if !ok {
		return nil, apperrors.NewNotFoundError("car " + carID)
	}
	return &car, nil
}

// DeleteCar removes a car together with its policies, claims and expiry logs.
func (s *Store) DeleteCar(ctx context.Context, carID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[carID]; !ok {
		return apperrors.NewNotFoundError("car " + carID)
	}
	for id, p := range s.policies {
		if p.CarID == carID {
			delete(s.logs, id)
			delete(s.policies, id)
		}
	}
	for id, c := range s.claims {
		if c.CarID == carID {
			delete(s.claims, id)
		}
	}
	delete(s.cars, carID)
	return nil
}

// --- policies ---

func (s *Store) FindPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.policies[policyID]
	if !ok {
		return nil, apperrors.NewNotFoundError("policy " + policyID)
	}
	return &p, nil
}

func (s *Store) ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InsurancePolicy, 0)
	for _, p := range s.policies {
		if p.CarID == carID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].PolicyID < out[j].PolicyID
	})
	return out, nil
}

func (s *Store) ExistsCoveringPolicy(ctx context.Context, carID string, date time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.policies {
		if p.CarID == carID && p.Covers(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SavePolicy(ctx context.Context, policy domain.InsurancePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.policies[policy.PolicyID]; exists {
		return fmt.Errorf("%w: policy %s", apperrors.ErrDuplicate, policy.PolicyID)
	}
	if err := s.checkPolicyLocked(policy); err != nil {
		return err
	}
	s.policies[policy.PolicyID] = policy
	return nil
}

func (s *Store) UpdatePolicy(ctx context.Context, policy domain.InsurancePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.policies[policy.PolicyID]
	if !ok {
		return apperrors.NewNotFoundError("policy " + policy.PolicyID)
	}
	// car and creation time are immutable
	policy.CarID = existing.CarID
	policy.CreatedAt = existing.CreatedAt
	if err := s.checkPolicyLocked(policy); err != nil {
		return err
	}
	s.policies[policy.PolicyID] = policy
	return nil
}

func (s *Store) checkPolicyLocked(policy domain.InsurancePolicy) error {
	if _, ok := s.cars[policy.CarID]; !ok {
		return apperrors.NewNotFoundError("car " + policy.CarID)
	}
	for id, other := range s.policies {
		if id != policy.PolicyID && other.CarID == policy.CarID && other.Overlaps(policy.StartDate, policy.EndDate) {
			return apperrors.NewValidationFailedError(apperrors.NonFieldErrors, domain.MsgPolicyOverlap)
		}
	}
	return nil
}

// --- claims ---

func (s *Store) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.claims[claimID]
	if !ok {
		return nil, apperrors.NewNotFoundError("claim " + claimID)
	}
	return &c, nil
}

func (s *Store) ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Claim, 0)
	for _, c := range s.claims {
		if c.CarID == carID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ClaimDate.Equal(out[j].ClaimDate) {
			return out[i].ClaimDate.Before(out[j].ClaimDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ClaimID < out[j].ClaimID
	})
	return out, nil
}

func (s *Store) SaveClaim(ctx context.Context, claim domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[claim.CarID]; !ok {
		return apperrors.NewNotFoundError("car " + claim.CarID)
	}
	if _, exists := s.claims[claim.ClaimID]; exists {
		return fmt.Errorf("%w: claim %s", apperrors.ErrDuplicate, claim.ClaimID)
	}
	s.claims[claim.ClaimID] = claim
	return nil
}

// --- expiry logs ---

func (s *Store) FindUnloggedExpiringOn(ctx context.Context, runDate time.Time, limit int) ([]domain.InsurancePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InsurancePolicy, 0)
	for id, p := range s.policies {
		if !p.EndDate.Equal(runDate) {
			continue
		}
		if _, logged := s.logs[id]; logged {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PolicyID < out[j].PolicyID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CreateExpiryLog(ctx context.Context, log domain.PolicyExpiryLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.policies[log.PolicyID]; !ok {
		return apperrors.NewNotFoundError("policy " + log.PolicyID)
	}
	if _, exists := s.logs[log.PolicyID]; exists {
		return apperrors.NewConflictError("expiry already logged for policy " + log.PolicyID)
	}
	s.logs[log.PolicyID] = log
	return nil
}

func (s *Store) ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PolicyExpiryLog, 0, len(s.logs))
	for _, l := range s.logs {
		p := s.policies[l.PolicyID]
		l.CarID = p.CarID
		l.EndDate = p.EndDate
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LoggedExpiryAt.Equal(out[j].LoggedExpiryAt) {
			return out[i].LoggedExpiryAt.After(out[j].LoggedExpiryAt)
		}
		return out[i].LogID > out[j].LogID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
