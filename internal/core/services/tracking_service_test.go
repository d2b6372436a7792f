package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/core/services"
)

// --- Mock DailyTrackingRepositoryFacade ---
type MockDailyTrackingRepository struct {
	mock.Mock
}

func (m *MockDailyTrackingRepository) FindTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error) {
	args := m.Called(ctx, date, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyUpdateTracking), args.Error(1)
}

func (m *MockDailyTrackingRepository) GetOrCreateTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error) {
	args := m.Called(ctx, date, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyUpdateTracking), args.Error(1)
}

func (m *MockDailyTrackingRepository) MarkTrackingAttempted(ctx context.Context, date time.Time, category string, dataFound bool, notes string) (*domain.DailyUpdateTracking, error) {
	args := m.Called(ctx, date, category, dataFound, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyUpdateTracking), args.Error(1)
}

func (m *MockDailyTrackingRepository) DeleteTrackingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type TrackingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDailyTrackingRepository
	service  *services.TrackingService
}

func (suite *TrackingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDailyTrackingRepository)
	suite.service = services.NewTrackingService(suite.mockRepo)
}

func (suite *TrackingServiceTestSuite) setNow(t time.Time) {
	suite.service.SetNow(func() time.Time { return t })
}

func unattemptedRow(date time.Time, category string) *domain.DailyUpdateTracking {
	return &domain.DailyUpdateTracking{TrackingDate: date, Category: category}
}

// --- Test Cases ---

func (suite *TrackingServiceTestSuite) TestShouldAttempt_SuppressedWhenAlreadyAttemptedToday() {
	ctx := context.Background()
	wednesday := day(17)
	suite.setNow(wednesday.Add(9 * time.Hour))

	suite.mockRepo.On("GetOrCreateTracking", ctx, wednesday, domain.TrackingCategoryExchangeRates).
		Return(&domain.DailyUpdateTracking{TrackingDate: wednesday, Category: domain.TrackingCategoryExchangeRates, Attempted: true}, nil).Once()

	due, err := suite.service.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, day(1))

	suite.Require().NoError(err)
	suite.False(due)
}

func (suite *TrackingServiceTestSuite) TestShouldAttempt_WeekdayDueWhenDataStale() {
	ctx := context.Background()
	wednesday := day(17)
	suite.setNow(wednesday.Add(9 * time.Hour))

	suite.mockRepo.On("GetOrCreateTracking", ctx, wednesday, domain.TrackingCategoryExchangeRates).
		Return(unattemptedRow(wednesday, domain.TrackingCategoryExchangeRates), nil).Once()

	due, err := suite.service.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, day(16))

	suite.Require().NoError(err)
	suite.True(due)
}

func (suite *TrackingServiceTestSuite) TestShouldAttempt_WeekdayNotDueWhenDataCurrent() {
	ctx := context.Background()
	wednesday := day(17)
	suite.setNow(wednesday.Add(9 * time.Hour))

	suite.mockRepo.On("GetOrCreateTracking", ctx, wednesday, domain.TrackingCategoryExchangeRates).
		Return(unattemptedRow(wednesday, domain.TrackingCategoryExchangeRates), nil).Once()

	due, err := suite.service.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, day(17))

	suite.Require().NoError(err)
	suite.False(due)
}

func (suite *TrackingServiceTestSuite) TestShouldAttempt_WeekendToleratesFridayData() {
	ctx := context.Background()
	saturday := day(13)
	suite.setNow(saturday.Add(9 * time.Hour))

	suite.mockRepo.On("GetOrCreateTracking", ctx, saturday, domain.TrackingCategoryExchangeRates).
		Return(unattemptedRow(saturday, domain.TrackingCategoryExchangeRates), nil).Twice()

	// Friday's data on Saturday is only one day old: no attempt.
	due, err := suite.service.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, day(12))
	suite.Require().NoError(err)
	suite.False(due)

	// Three days old is still within the weekend gap.
	due, err = suite.service.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, day(10))
	suite.Require().NoError(err)
	suite.False(due)
}

func (suite *TrackingServiceTestSuite) TestShouldAttempt_WeekendDueWhenDataOlderThanGap() {
	ctx := context.Background()
	saturday := day(13)
	suite.setNow(saturday.Add(9 * time.Hour))

	suite.mockRepo.On("GetOrCreateTracking", ctx, saturday, domain.TrackingCategoryExchangeRates).
		Return(unattemptedRow(saturday, domain.TrackingCategoryExchangeRates), nil).Once()

	due, err := suite.service.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, day(9))

	suite.Require().NoError(err)
	suite.True(due)
}

func (suite *TrackingServiceTestSuite) TestMarkAttemptedDelegates() {
	ctx := context.Background()
	row := &domain.DailyUpdateTracking{TrackingDate: day(17), Category: "etf_prices_IE00B4L5Y983", Attempted: true, DataFound: true}
	suite.mockRepo.On("MarkTrackingAttempted", ctx, day(17), "etf_prices_IE00B4L5Y983", true, "").
		Return(row, nil).Once()

	got, err := suite.service.MarkAttempted(ctx, day(17), "etf_prices_IE00B4L5Y983", true, "")

	suite.Require().NoError(err)
	suite.Equal(row, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TrackingServiceTestSuite) TestCleanupTrackingUsesDateCutoff() {
	ctx := context.Background()
	suite.setNow(day(17).Add(9 * time.Hour))
	suite.mockRepo.On("DeleteTrackingBefore", ctx, day(17).AddDate(0, 0, -30)).
		Return(int64(12), nil).Once()

	deleted, err := suite.service.CleanupTracking(ctx, 30)

	suite.Require().NoError(err)
	suite.Equal(int64(12), deleted)
}

func TestTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingServiceTestSuite))
}
