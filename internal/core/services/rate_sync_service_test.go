package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/core/services"
)

// --- Mock RateStoreSvcFacade ---
type MockRateStoreService struct {
	mock.Mock
}

func (m *MockRateStoreService) GetRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currency, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateStoreService) GetClosestRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currency, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateStoreService) LatestRateDate(ctx context.Context, currency string) (time.Time, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockRateStoreService) ListRates(ctx context.Context, currency string, from, to time.Time) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currency, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockRateStoreService) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock SyncUpdateRepositoryFacade ---
type MockSyncUpdateRepository struct {
	mock.Mock
}

func (m *MockSyncUpdateRepository) CreateSyncUpdate(ctx context.Context, update domain.SyncUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockSyncUpdateRepository) MarkSyncUpdateCompleted(ctx context.Context, updateID string, missingDates []time.Time, retryCount int) error {
	args := m.Called(ctx, updateID, missingDates, retryCount)
	return args.Error(0)
}

func (m *MockSyncUpdateRepository) MarkSyncUpdateFailed(ctx context.Context, updateID string, errMsg string) error {
	args := m.Called(ctx, updateID, errMsg)
	return args.Error(0)
}

func (m *MockSyncUpdateRepository) FindSyncUpdateByID(ctx context.Context, updateID string) (*domain.SyncUpdate, error) {
	args := m.Called(ctx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncUpdate), args.Error(1)
}

func (m *MockSyncUpdateRepository) ListRecentSyncUpdates(ctx context.Context, limit int) ([]domain.SyncUpdate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SyncUpdate), args.Error(1)
}

func (m *MockSyncUpdateRepository) DeleteCompletedSyncUpdatesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock RateFetcher ---
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchRates(ctx context.Context, currency string, start, end time.Time) ([]domain.RateObservation, error) {
	args := m.Called(ctx, currency, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateObservation), args.Error(1)
}

// --- Test Suite ---
type RateSyncServiceTestSuite struct {
	suite.Suite
	mockRateStore *MockRateStoreService
	mockSyncRepo  *MockSyncUpdateRepository
	mockFetcher   *MockRateFetcher
	service       *services.RateSyncService
}

// fixedNow is a Wednesday; the previous business day is Tuesday the 16th.
var fixedNow = time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func (suite *RateSyncServiceTestSuite) SetupTest() {
	suite.mockRateStore = new(MockRateStoreService)
	suite.mockSyncRepo = new(MockSyncUpdateRepository)
	suite.mockFetcher = new(MockRateFetcher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewRateSyncService(
		suite.mockRateStore,
		suite.mockSyncRepo,
		suite.mockFetcher,
		services.RateSyncConfig{
			Currencies:   []string{"USD"},
			ChunkDays:    30,
			MaxRetries:   2,
			RetryBackoff: time.Millisecond,
		},
		logger,
	)
	suite.service.SetNow(func() time.Time { return fixedNow })
}

func observationsFor(dates ...time.Time) []domain.RateObservation {
	obs := make([]domain.RateObservation, len(dates))
	for i, d := range dates {
		obs[i] = domain.RateObservation{Date: d, Rate: decimal.NewFromFloat(1.08)}
	}
	return obs
}

// --- Test Cases ---

func (suite *RateSyncServiceTestSuite) TestSynchronize_InvalidUpdateType() {
	update, err := suite.service.Synchronize(context.Background(), portssvc.SyncRequest{
		UpdateType: domain.UpdateType("bogus"),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(update)
	suite.mockSyncRepo.AssertNotCalled(suite.T(), "CreateSyncUpdate", mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_NoOpWhenWatermarkCurrent() {
	ctx := context.Background()
	// Watermark already at the previous business day.
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(16), nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(update)
	suite.Equal(domain.SyncStatusCompleted, update.Status)
	suite.Empty(update.Currencies)
	suite.Equal(day(16), update.StartDate)
	suite.Equal(day(16), update.EndDate)
	suite.Require().NotNil(update.CompletedAt)

	// A no-op run is synthetic: nothing persisted, nothing fetched.
	suite.mockSyncRepo.AssertNotCalled(suite.T(), "CreateSyncUpdate", mock.Anything, mock.Anything)
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_DailyFillsGapFromWatermark() {
	ctx := context.Background()
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(10), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.AnythingOfType("domain.SyncUpdate")).Return(nil).Once()

	fetched := observationsFor(day(11), day(12), day(15), day(16), day(17))
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(11), day(17)).Return(fetched, nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.AnythingOfType("[]domain.ExchangeRate")).Return(nil).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.AnythingOfType("string"), mock.Anything, 0).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(update)
	suite.Equal(domain.SyncStatusCompleted, update.Status)
	suite.Equal([]string{"USD"}, update.Currencies)
	suite.Equal(day(11), update.StartDate)
	suite.Equal(day(17), update.EndDate)
	suite.Empty(update.MissingDates)
	suite.Zero(update.RetryCount)

	upsertCall := suite.mockRateStore.Calls[len(suite.mockRateStore.Calls)-1]
	rates := upsertCall.Arguments.Get(1).([]domain.ExchangeRate)
	suite.Len(rates, 5)
	suite.Equal("USD", rates[0].Currency)
	suite.Equal(day(11), rates[0].RateDate)

	suite.mockSyncRepo.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_FirstRunStartsYesterday() {
	ctx := context.Background()
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").
		Return(time.Time{}, apperrors.NewNotFoundError("no rates for USD")).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.AnythingOfType("domain.SyncUpdate")).Return(nil).Once()

	suite.mockFetcher.On("FetchRates", ctx, "USD", day(16), day(17)).
		Return(observationsFor(day(16), day(17)), nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.Anything).Return(nil).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 0).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeStartupCatchup,
	})

	suite.Require().NoError(err)
	suite.Equal(day(16), update.StartDate)
	suite.Equal(day(17), update.EndDate)
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_ExhaustedChunkBecomesMissingDates() {
	ctx := context.Background()
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(10), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()

	// Both attempts fail; the chunk's business days become missing dates.
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(11), day(17)).
		Return(nil, errors.New("connection reset")).Times(2)
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 1).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.SyncStatusCompleted, update.Status)
	suite.Equal([]time.Time{day(11), day(12), day(15), day(16), day(17)}, update.MissingDates)
	suite.Equal(1, update.RetryCount)

	suite.mockRateStore.AssertNotCalled(suite.T(), "UpsertRates", mock.Anything, mock.Anything)
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_EmptyResultOnBusinessDaysIsRetried() {
	ctx := context.Background()
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(10), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()

	// The window contains business days, so an empty answer is treated as a
	// transient source fault and retried like any error.
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(11), day(17)).
		Return([]domain.RateObservation{}, nil).Times(2)
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 1).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
	})

	suite.Require().NoError(err)
	suite.Len(update.MissingDates, 5)
	suite.mockRateStore.AssertNotCalled(suite.T(), "UpsertRates", mock.Anything, mock.Anything)
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_CurrencyFailureDoesNotBlockOthers() {
	ctx := context.Background()
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(15), nil).Once()
	suite.mockRateStore.On("LatestRateDate", ctx, "CHF").Return(day(15), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()

	suite.mockFetcher.On("FetchRates", ctx, "USD", day(16), day(17)).
		Return(nil, errors.New("source down")).Times(2)
	suite.mockFetcher.On("FetchRates", ctx, "CHF", day(16), day(17)).
		Return(observationsFor(day(16), day(17)), nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.Anything).Return(nil).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 1).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
		Currencies: []string{"USD", "CHF"},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.SyncStatusCompleted, update.Status)
	suite.Equal([]string{"USD", "CHF"}, update.Currencies)
	// Only the failing currency's business days are missing.
	suite.Equal([]time.Time{day(16), day(17)}, update.MissingDates)
	suite.mockRateStore.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_StoreFailureFailsTheRun() {
	ctx := context.Background()
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(15), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()

	suite.mockFetcher.On("FetchRates", ctx, "USD", day(16), day(17)).
		Return(observationsFor(day(16), day(17)), nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.Anything).
		Return(errors.New("db unreachable")).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateFailed", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
	})

	suite.Require().Error(err)
	suite.Require().NotNil(update)
	suite.Equal(domain.SyncStatusFailed, update.Status)
	suite.Contains(update.Error, "db unreachable")
	suite.mockSyncRepo.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_HistoricalClampsStartToWatermark() {
	ctx := context.Background()
	startReq := day(1)
	endReq := day(12)
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(10), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()

	// Requested start precedes stored data; the fetch begins above the watermark.
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(11), day(12)).
		Return(observationsFor(day(11), day(12)), nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.Anything).Return(nil).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 0).Return(nil).Once()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeManualHistorical,
		StartDate:  &startReq,
		EndDate:    &endReq,
	})

	suite.Require().NoError(err)
	suite.Equal(day(11), update.StartDate)
	suite.Equal(day(12), update.EndDate)
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_SecondRunAfterSuccessIsNoOp() {
	ctx := context.Background()
	// First run fills up to today.
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(10), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(11), day(17)).
		Return(observationsFor(day(15), day(16), day(17)), nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.Anything).Return(nil).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 0).Return(nil).Once()

	first, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{UpdateType: domain.UpdateTypeScheduledDaily})
	suite.Require().NoError(err)
	suite.Equal(domain.SyncStatusCompleted, first.Status)

	// Second run sees the advanced watermark and fetches nothing.
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(17), nil).Once()

	second, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{UpdateType: domain.UpdateTypeScheduledDaily})
	suite.Require().NoError(err)
	suite.Equal(domain.SyncStatusCompleted, second.Status)
	suite.Empty(second.Currencies)
	suite.mockFetcher.AssertNumberOfCalls(suite.T(), "FetchRates", 1)
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_CancelledContextFailsRun() {
	ctx, cancel := context.WithCancel(context.Background())
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").Return(day(10), nil).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()
	suite.mockSyncRepo.On("MarkSyncUpdateFailed", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	cancel()

	update, err := suite.service.Synchronize(ctx, portssvc.SyncRequest{UpdateType: domain.UpdateTypeScheduledDaily})

	suite.Require().Error(err)
	suite.ErrorIs(err, context.Canceled)
	suite.Equal(domain.SyncStatusFailed, update.Status)
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSynchronize_ChunksCommitIndependentlyAcrossMonth() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := services.NewRateSyncService(
		suite.mockRateStore,
		suite.mockSyncRepo,
		suite.mockFetcher,
		services.RateSyncConfig{
			Currencies:   []string{"USD"},
			ChunkDays:    7,
			MaxRetries:   2,
			RetryBackoff: time.Millisecond,
		},
		logger,
	)
	service.SetNow(func() time.Time { return time.Date(2024, time.February, 5, 10, 0, 0, 0, time.UTC) })

	startReq := day(6) // Saturday
	endReq := day(31)
	suite.mockRateStore.On("LatestRateDate", ctx, "USD").
		Return(time.Time{}, apperrors.NewNotFoundError("no rates for USD")).Once()
	suite.mockSyncRepo.On("CreateSyncUpdate", ctx, mock.Anything).Return(nil).Once()

	// Chunk windows advance in 7-day steps from the requested Saturday; each
	// fetch starts on the chunk's first business day.
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(8), day(12)).
		Return(observationsFor(day(8), day(9), day(10), day(11), day(12)), nil).Once()
	// The third week's source stays down through both attempts.
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(15), day(19)).
		Return(nil, errors.New("source down")).Times(2)
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(22), day(26)).
		Return(observationsFor(day(22), day(23), day(24), day(25), day(26)), nil).Once()
	suite.mockFetcher.On("FetchRates", ctx, "USD", day(29), day(31)).
		Return(observationsFor(day(29), day(30), day(31)), nil).Once()
	suite.mockRateStore.On("UpsertRates", ctx, mock.Anything).Return(nil).Times(3)
	suite.mockSyncRepo.On("MarkSyncUpdateCompleted", ctx, mock.Anything, mock.Anything, 1).Return(nil).Once()

	update, err := service.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeManualHistorical,
		StartDate:  &startReq,
		EndDate:    &endReq,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.SyncStatusCompleted, update.Status)
	suite.Equal(day(6), update.StartDate)
	suite.Equal(day(31), update.EndDate)
	// Only the failed week's business days are missing; the chunks around it
	// were merged on their own commits.
	suite.Equal([]time.Time{day(15), day(16), day(17), day(18), day(19)}, update.MissingDates)
	suite.Equal(1, update.RetryCount)
	suite.mockRateStore.AssertNumberOfCalls(suite.T(), "UpsertRates", 3)
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestCleanupSyncUpdates() {
	ctx := context.Background()
	suite.mockSyncRepo.On("DeleteCompletedSyncUpdatesBefore", ctx, fixedNow.AddDate(0, 0, -30)).
		Return(int64(4), nil).Once()

	deleted, err := suite.service.CleanupSyncUpdates(ctx, 30)

	suite.Require().NoError(err)
	suite.Equal(int64(4), deleted)
	suite.mockSyncRepo.AssertExpectations(suite.T())
}

func TestRateSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateSyncServiceTestSuite))
}
