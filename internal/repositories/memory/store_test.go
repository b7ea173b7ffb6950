package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	carID string
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.carID = s.seedCar("VIN00000000000001")
}

func (s *StoreTestSuite) seedCar(vin string) string {
	ownerID := uuid.NewString()
	s.Require().NoError(s.store.SaveOwner(s.ctx, domain.Owner{OwnerID: ownerID, OwnerName: "Ana"}))
	carID := uuid.NewString()
	s.Require().NoError(s.store.SaveCar(s.ctx, domain.Car{CarID: carID, VIN: vin, Make: "Dacia", Model: "Logan", OwnerID: ownerID}))
	return carID
}

func policy(carID string, start, end time.Time) domain.InsurancePolicy {
	return domain.InsurancePolicy{PolicyID: uuid.NewString(), CarID: carID, StartDate: start, EndDate: end, CreatedAt: time.Now()}
}

func (s *StoreTestSuite) TestSavePolicy_RejectsInclusiveOverlap() {
	first := policy(s.carID, domain.NewDate(2025, time.January, 1), domain.NewDate(2025, time.December, 31))
	s.Require().NoError(s.store.SavePolicy(s.ctx, first))

	touching := policy(s.carID, domain.NewDate(2025, time.December, 31), domain.NewDate(2026, time.June, 30))
	err := s.store.SavePolicy(s.ctx, touching)
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	v, ok := apperrors.AsValidationFailed(err)
	s.Require().True(ok)
	s.Equal([]string{domain.MsgPolicyOverlap}, v.Fields[apperrors.NonFieldErrors])

	adjacent := policy(s.carID, domain.NewDate(2026, time.January, 1), domain.NewDate(2026, time.June, 30))
	s.NoError(s.store.SavePolicy(s.ctx, adjacent))

	otherCar := s.seedCar("VIN00000000000002")
	s.NoError(s.store.SavePolicy(s.ctx, policy(otherCar, first.StartDate, first.EndDate)), "overlap is per car")
}

func (s *StoreTestSuite) TestUpdatePolicy_ExcludesItself() {
	p := policy(s.carID, domain.NewDate(2025, time.January, 1), domain.NewDate(2025, time.June, 30))
	s.Require().NoError(s.store.SavePolicy(s.ctx, p))

	p.EndDate = domain.NewDate(2025, time.December, 31)
	s.Require().NoError(s.store.UpdatePolicy(s.ctx, p))

	got, err := s.store.FindPolicyByID(s.ctx, p.PolicyID)
	s.Require().NoError(err)
	s.Equal(p.EndDate, got.EndDate)
}

func (s *StoreTestSuite) TestSave_MissingCar() {
	err := s.store.SavePolicy(s.ctx, policy("nope", domain.NewDate(2025, time.January, 1), domain.NewDate(2025, time.January, 1)))
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.store.SaveClaim(s.ctx, domain.Claim{ClaimID: uuid.NewString(), CarID: "nope", Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestExpiryLog_OnePerPolicy() {
	runDate := domain.NewDate(2025, time.March, 31)
	p := policy(s.carID, domain.NewDate(2025, time.January, 1), runDate)
	s.Require().NoError(s.store.SavePolicy(s.ctx, p))

	pending, err := s.store.FindUnloggedExpiringOn(s.ctx, runDate, 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	entry := domain.PolicyExpiryLog{LogID: uuid.NewString(), PolicyID: p.PolicyID, LoggedExpiryAt: time.Now()}
	s.Require().NoError(s.store.CreateExpiryLog(s.ctx, entry))
	s.ErrorIs(s.store.CreateExpiryLog(s.ctx, entry), apperrors.ErrConflict)

	pending, err = s.store.FindUnloggedExpiringOn(s.ctx, runDate, 10)
	s.Require().NoError(err)
	s.Empty(pending)

	logs, err := s.store.ListExpiryLogs(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(s.carID, logs[0].CarID)
	s.Equal(runDate, logs[0].EndDate)
}

func (s *StoreTestSuite) TestDeleteCar_Cascades() {
	p := policy(s.carID, domain.NewDate(2025, time.January, 1), domain.NewDate(2025, time.March, 31))
	s.Require().NoError(s.store.SavePolicy(s.ctx, p))
	s.Require().NoError(s.store.CreateExpiryLog(s.ctx, domain.PolicyExpiryLog{LogID: uuid.NewString(), PolicyID: p.PolicyID}))

	s.Require().NoError(s.store.DeleteCar(s.ctx, s.carID))

	_, err := s.store.FindPolicyByID(s.ctx, p.PolicyID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	logs, err := s.store.ListExpiryLogs(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(logs)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestSavePolicy_ConcurrentOverlappingWritesAdmitOne(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveOwner(ctx, domain.Owner{OwnerID: "o1", OwnerName: "Ana"}))
	require.NoError(t, store.SaveCar(ctx, domain.Car{CarID: "c1", VIN: "VIN1", OwnerID: "o1"}))

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every interval contains 2025-06-15.
			start := domain.NewDate(2025, time.June, 1).AddDate(0, 0, i%10)
			errs <- store.SavePolicy(ctx, policy("c1", start, domain.NewDate(2025, time.June, 15).AddDate(0, 0, i)))
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	assert.Equal(t, 1, succeeded)

	got, err := store.ListPoliciesByCar(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
