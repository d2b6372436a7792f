package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/platform/config"
)

// --- Mock RateSyncSvcFacade ---
type MockRateSyncService struct {
	mock.Mock
}

func (m *MockRateSyncService) Synchronize(ctx context.Context, req portssvc.SyncRequest) (*domain.SyncUpdate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncUpdate), args.Error(1)
}

func (m *MockRateSyncService) GetSyncUpdate(ctx context.Context, updateID string) (*domain.SyncUpdate, error) {
	args := m.Called(ctx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncUpdate), args.Error(1)
}

func (m *MockRateSyncService) ListRecentSyncUpdates(ctx context.Context, limit int) ([]domain.SyncUpdate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SyncUpdate), args.Error(1)
}

func (m *MockRateSyncService) CleanupSyncUpdates(ctx context.Context, retainDays int) (int64, error) {
	args := m.Called(ctx, retainDays)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TrackingSvcFacade ---
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) GetOrCreateTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error) {
	args := m.Called(ctx, date, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyUpdateTracking), args.Error(1)
}

func (m *MockTrackingService) MarkAttempted(ctx context.Context, date time.Time, category string, dataFound bool, notes string) (*domain.DailyUpdateTracking, error) {
	args := m.Called(ctx, date, category, dataFound, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyUpdateTracking), args.Error(1)
}

func (m *MockTrackingService) ShouldAttempt(ctx context.Context, category string, latestKnownDataDate time.Time) (bool, error) {
	args := m.Called(ctx, category, latestKnownDataDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingService) CleanupTracking(ctx context.Context, retainDays int) (int64, error) {
	args := m.Called(ctx, retainDays)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type SchedulerTestSuite struct {
	suite.Suite
	mockSync     *MockRateSyncService
	mockTracking *MockTrackingService
	scheduler    *Scheduler
}

func (suite *SchedulerTestSuite) SetupTest() {
	suite.mockSync = new(MockRateSyncService)
	suite.mockTracking = new(MockTrackingService)
	suite.scheduler = &Scheduler{
		cfg: &config.Config{},
		services: &portssvc.ServiceContainer{
			RateSync: suite.mockSync,
			Tracking: suite.mockTracking,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func completedRun(currencies []string, missing []time.Time) *domain.SyncUpdate {
	return &domain.SyncUpdate{
		UpdateID:     "u-1",
		UpdateType:   domain.UpdateTypeScheduledDaily,
		Currencies:   currencies,
		Status:       domain.SyncStatusCompleted,
		MissingDates: missing,
	}
}

// --- Test Cases ---

func (suite *SchedulerTestSuite) TestRunDailySync_NoOpRunRecordsNoDataFound() {
	// A current watermark yields a synthetic run that fetched nothing; the
	// ledger must not claim the attempt found data.
	suite.mockSync.On("Synchronize", mock.Anything, mock.AnythingOfType("services.SyncRequest")).
		Return(completedRun([]string{}, nil), nil).Once()
	suite.mockTracking.On("MarkAttempted", mock.Anything, mock.Anything, domain.TrackingCategoryExchangeRates, false, "").
		Return(&domain.DailyUpdateTracking{}, nil).Once()

	suite.scheduler.runDailySync()

	suite.mockTracking.AssertExpectations(suite.T())
}

func (suite *SchedulerTestSuite) TestRunDailySync_CleanRunRecordsDataFound() {
	suite.mockSync.On("Synchronize", mock.Anything, mock.Anything).
		Return(completedRun([]string{"USD"}, nil), nil).Once()
	suite.mockTracking.On("MarkAttempted", mock.Anything, mock.Anything, domain.TrackingCategoryExchangeRates, true, "").
		Return(&domain.DailyUpdateTracking{}, nil).Once()

	suite.scheduler.runDailySync()

	suite.mockTracking.AssertExpectations(suite.T())
}

func (suite *SchedulerTestSuite) TestRunDailySync_MissingDatesRecordNoDataFound() {
	missing := []time.Time{time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)}
	suite.mockSync.On("Synchronize", mock.Anything, mock.Anything).
		Return(completedRun([]string{"USD"}, missing), nil).Once()
	suite.mockTracking.On("MarkAttempted", mock.Anything, mock.Anything, domain.TrackingCategoryExchangeRates, false, "").
		Return(&domain.DailyUpdateTracking{}, nil).Once()

	suite.scheduler.runDailySync()

	suite.mockTracking.AssertExpectations(suite.T())
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}
