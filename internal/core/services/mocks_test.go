package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CarRepository ---
type MockCarRepository struct {
	mock.Mock
}

var _ portsrepo.CarRepositoryFacade = (*MockCarRepository)(nil)

func (m *MockCarRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockCarRepository) SaveCar(ctx context.Context, car domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

// --- Mock PolicyRepository ---
type MockPolicyRepository struct {
	mock.Mock
}

var _ portsrepo.PolicyRepositoryFacade = (*MockPolicyRepository)(nil)

func (m *MockPolicyRepository) FindPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyRepository) ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyRepository) ExistsCoveringPolicy(ctx context.Context, carID string, date time.Time) (bool, error) {
	args := m.Called(ctx, carID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockPolicyRepository) SavePolicy(ctx context.Context, policy domain.InsurancePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) UpdatePolicy(ctx context.Context, policy domain.InsurancePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// --- Mock ClaimRepository ---
type MockClaimRepository struct {
	mock.Mock
}

var _ portsrepo.ClaimRepositoryFacade = (*MockClaimRepository)(nil)

func (m *MockClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimRepository) ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Claim), args.Error(1)
}

func (m *MockClaimRepository) SaveClaim(ctx context.Context, claim domain.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

// --- Mock ExpiryLogRepository ---
type MockExpiryLogRepository struct {
	mock.Mock
}

var _ portsrepo.ExpiryLogRepositoryFacade = (*MockExpiryLogRepository)(nil)

func (m *MockExpiryLogRepository) FindUnloggedExpiringOn(ctx context.Context, runDate time.Time, limit int) ([]domain.InsurancePolicy, error) {
	args := m.Called(ctx, runDate, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InsurancePolicy), args.Error(1)
}

func (m *MockExpiryLogRepository) ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PolicyExpiryLog), args.Error(1)
}

func (m *MockExpiryLogRepository) CreateExpiryLog(ctx context.Context, log domain.PolicyExpiryLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
