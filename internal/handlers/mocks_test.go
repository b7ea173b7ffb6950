package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CarService ---
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) GetCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

var _ portssvc.CarSvc = (*MockCarService)(nil)

// --- Mock PolicyService ---
type MockPolicyService struct {
	mock.Mock
}

func (m *MockPolicyService) GetPolicyByID(ctx context.Context, policyID string) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyService) CreatePolicy(ctx context.Context, carID string, req dto.CreatePolicyRequest) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, carID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyService) UpdatePolicy(ctx context.Context, policyID string, req dto.UpdatePolicyRequest) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, policyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyService) ListPoliciesByCar(ctx context.Context, carID string) ([]domain.InsurancePolicy, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InsurancePolicy), args.Error(1)
}

var _ portssvc.PolicySvcFacade = (*MockPolicyService)(nil)

// --- Mock ClaimService ---
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) GetClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) CreateClaim(ctx context.Context, carID string, req dto.CreateClaimRequest) (*domain.Claim, error) {
	args := m.Called(ctx, carID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) ListClaimsByCar(ctx context.Context, carID string) ([]domain.Claim, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Claim), args.Error(1)
}

var _ portssvc.ClaimSvcFacade = (*MockClaimService)(nil)

// --- Mock ValidityService ---
type MockValidityService struct {
	mock.Mock
}

func (m *MockValidityService) IsInsuredOn(ctx context.Context, carID string, date time.Time) (bool, error) {
	args := m.Called(ctx, carID, date)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.ValiditySvc = (*MockValidityService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) GetHistory(ctx context.Context, carID string) ([]domain.TimelineEntry, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimelineEntry), args.Error(1)
}

var _ portssvc.HistorySvc = (*MockHistoryService)(nil)

// --- Mock ExpiryService ---
type MockExpiryService struct {
	mock.Mock
}

func (m *MockExpiryService) DetectAndLogExpired(ctx context.Context, runDate time.Time) (int, error) {
	args := m.Called(ctx, runDate)
	return args.Int(0), args.Error(1)
}

func (m *MockExpiryService) ListExpiryLogs(ctx context.Context, limit int) ([]domain.PolicyExpiryLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PolicyExpiryLog), args.Error(1)
}

var _ portssvc.ExpirySvcFacade = (*MockExpiryService)(nil)
