package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpiryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpiryLogRepository
	ctx      context.Context
	runDate  time.Time
}

func (suite *ExpiryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockExpiryLogRepository)
	suite.runDate = domain.NewDate(2025, time.May, 31)
}

func expiring(ids ...string) []domain.InsurancePolicy {
	ps := make([]domain.InsurancePolicy, len(ids))
	for i, id := range ids {
		ps[i] = domain.InsurancePolicy{PolicyID: id, CarID: "car-" + id}
	}
	return ps
}

func forPolicy(id string) any {
	return mock.MatchedBy(func(l domain.PolicyExpiryLog) bool {
		return l.PolicyID == id && l.LogID != "" && l.LoggedExpiryAt.Equal(fixedNow)
	})
}

func (suite *ExpiryServiceTestSuite) newService(batchSize, maxBatches int) portssvc.ExpirySvcFacade {
	return services.NewExpiryService(suite.mockRepo, batchSize, maxBatches, services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *ExpiryServiceTestSuite) TestDetect_WalksBatchesUntilShortPage() {
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 2).Return(expiring("a", "b"), nil).Once()
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 2).Return(expiring("c"), nil).Once()
	for _, id := range []string{"a", "b", "c"} {
		suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy(id)).Return(nil).Once()
	}

	created, err := suite.newService(2, 10).DetectAndLogExpired(suite.ctx, suite.runDate)

	suite.Require().NoError(err)
	suite.Equal(3, created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpiryServiceTestSuite) TestDetect_SkipsEntriesWrittenConcurrently() {
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 10).Return(expiring("a", "b", "c"), nil).Once()
	suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy("a")).Return(nil).Once()
	suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy("b")).Return(apperrors.NewConflictError("already logged")).Once()
	suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy("c")).Return(apperrors.NewNotFoundError("policy c")).Once()

	created, err := suite.newService(10, 10).DetectAndLogExpired(suite.ctx, suite.runDate)

	suite.Require().NoError(err)
	suite.Equal(1, created)
}

func (suite *ExpiryServiceTestSuite) TestDetect_NothingDue() {
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 10).Return([]domain.InsurancePolicy{}, nil).Once()

	created, err := suite.newService(10, 10).DetectAndLogExpired(suite.ctx, suite.runDate)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateExpiryLog", mock.Anything, mock.Anything)
}

func (suite *ExpiryServiceTestSuite) TestDetect_StopsAtBatchBound() {
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 1).Return(expiring("a"), nil).Twice()
	suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy("a")).Return(nil).Twice()

	created, err := suite.newService(1, 2).DetectAndLogExpired(suite.ctx, suite.runDate)

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindUnloggedExpiringOn", 2)
}

func (suite *ExpiryServiceTestSuite) TestDetect_StoreFailureIsTransient() {
	storeErr := apperrors.NewAppError(500, "connection reset", assert.AnError)
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 10).Return(nil, storeErr).Once()

	_, err := suite.newService(10, 10).DetectAndLogExpired(suite.ctx, suite.runDate)

	suite.ErrorIs(err, apperrors.ErrTransient)
}

func (suite *ExpiryServiceTestSuite) TestDetect_WriteFailureStopsRun() {
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 10).Return(expiring("a", "b"), nil).Once()
	suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy("a")).Return(nil).Once()
	suite.mockRepo.On("CreateExpiryLog", suite.ctx, forPolicy("b")).Return(assert.AnError).Once()

	created, err := suite.newService(10, 10).DetectAndLogExpired(suite.ctx, suite.runDate)

	suite.ErrorIs(err, assert.AnError)
	suite.Equal(1, created)
}

func (suite *ExpiryServiceTestSuite) TestDetect_DropsClockPart() {
	late := time.Date(2025, time.May, 31, 23, 59, 0, 0, time.FixedZone("EEST", 3*60*60))
	suite.mockRepo.On("FindUnloggedExpiringOn", suite.ctx, suite.runDate, 10).Return([]domain.InsurancePolicy{}, nil).Once()

	_, err := suite.newService(10, 10).DetectAndLogExpired(suite.ctx, late)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpiryServiceTestSuite) TestDetect_CancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := suite.newService(10, 10).DetectAndLogExpired(ctx, suite.runDate)

	suite.ErrorIs(err, context.Canceled)
}

func (suite *ExpiryServiceTestSuite) TestListExpiryLogs_ClampsLimit() {
	svc := services.NewExpiryService(suite.mockRepo, 0, 0)
	suite.mockRepo.On("ListExpiryLogs", suite.ctx, services.DefaultExpiryLogListSize).Return([]domain.PolicyExpiryLog{}, nil).Once()
	suite.mockRepo.On("ListExpiryLogs", suite.ctx, services.MaxExpiryLogListSize).Return([]domain.PolicyExpiryLog{}, nil).Once()
	suite.mockRepo.On("ListExpiryLogs", suite.ctx, 7).Return([]domain.PolicyExpiryLog{{LogID: "l"}}, nil).Once()

	_, err := svc.ListExpiryLogs(suite.ctx, 0)
	suite.Require().NoError(err)
	_, err = svc.ListExpiryLogs(suite.ctx, 100000)
	suite.Require().NoError(err)
	logs, err := svc.ListExpiryLogs(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Len(logs, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestExpiryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpiryServiceTestSuite))
}
