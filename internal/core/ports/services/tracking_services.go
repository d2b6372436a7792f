package services

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// TrackingSvcFacade is the day-granular attempt ledger consulted before
// hitting external sources, so a startup catch-up pass and the scheduled
// daily job never duplicate work for the same calendar day.
type TrackingSvcFacade interface {
	// GetOrCreateTracking returns the row for (date, category), creating an
	// unattempted one when absent.
	GetOrCreateTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error)

	// MarkAttempted records that an attempt was made today for the category.
	MarkAttempted(ctx context.Context, date time.Time, category string, dataFound bool, notes string) (*domain.DailyUpdateTracking, error)

	// ShouldAttempt reports whether an update attempt for the category is due,
	// given the most recent date for which data is already known.
	ShouldAttempt(ctx context.Context, category string, latestKnownDataDate time.Time) (bool, error)

	// CleanupTracking deletes ledger rows older than the retention window.
	CleanupTracking(ctx context.Context, retainDays int) (int64, error)
}
