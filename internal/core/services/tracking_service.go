package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

// weekendStalenessDays is how old the latest known data may get over a
// weekend before an attempt is forced anyway. Three days tolerates a normal
// Friday-to-Monday gap without spamming the source on Saturday and Sunday.
const weekendStalenessDays = 3

// TrackingService keeps the day-granular attempt ledger that lets the startup
// catch-up pass and the scheduled daily job share one "already tried today?"
// answer per update category.
type TrackingService struct {
	trackingRepo portsrepo.DailyTrackingRepositoryFacade
	now          func() time.Time
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(trackingRepo portsrepo.DailyTrackingRepositoryFacade) *TrackingService {
	return &TrackingService{
		trackingRepo: trackingRepo,
		now:          time.Now,
	}
}

// GetOrCreateTracking returns the ledger row for (date, category), creating
// an unattempted one when absent.
func (s *TrackingService) GetOrCreateTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error) {
	return s.trackingRepo.GetOrCreateTracking(ctx, date, category)
}

// MarkAttempted records that an attempt was made for the category on the date.
func (s *TrackingService) MarkAttempted(ctx context.Context, date time.Time, category string, dataFound bool, notes string) (*domain.DailyUpdateTracking, error) {
	return s.trackingRepo.MarkTrackingAttempted(ctx, date, category, dataFound, notes)
}

// ShouldAttempt reports whether an update attempt for the category is due.
// An attempt already recorded for today suppresses another one. On weekends
// an attempt is due only once the latest known data is more than three days
// old; on weekdays whenever the latest known data predates today.
func (s *TrackingService) ShouldAttempt(ctx context.Context, category string, latestKnownDataDate time.Time) (bool, error) {
	today := busday.DateOnly(s.now())

	entry, err := s.trackingRepo.GetOrCreateTracking(ctx, today, category)
	if err != nil {
		return false, fmt.Errorf("failed to consult tracking ledger for %s: %w", category, err)
	}
	if entry.Attempted {
		return false, nil
	}

	if busday.IsWeekend(today) {
		return busday.DaysApart(latestKnownDataDate, today) > weekendStalenessDays, nil
	}
	return busday.DateOnly(latestKnownDataDate).Before(today), nil
}

// CleanupTracking deletes ledger rows older than the retention window.
func (s *TrackingService) CleanupTracking(ctx context.Context, retainDays int) (int64, error) {
	cutoff := busday.DateOnly(s.now()).AddDate(0, 0, -retainDays)
	return s.trackingRepo.DeleteTrackingBefore(ctx, cutoff)
}
