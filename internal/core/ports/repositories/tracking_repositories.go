package repositories

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// DailyTrackingReader defines read operations for the daily attempt ledger
type DailyTrackingReader interface {
	// FindTracking retrieves the tracking row for a (date, category) key.
	FindTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error)
}

// DailyTrackingWriter defines write operations for the daily attempt ledger
type DailyTrackingWriter interface {
	// GetOrCreateTracking returns the row for the key, creating it with
	// attempted=false when absent. Concurrent callers converge on one row.
	GetOrCreateTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error)

	// MarkTrackingAttempted upserts the row with attempted=true and the given outcome.
	MarkTrackingAttempted(ctx context.Context, date time.Time, category string, dataFound bool, notes string) (*domain.DailyUpdateTracking, error)

	// DeleteTrackingBefore removes rows with a tracking date older than the cutoff.
	DeleteTrackingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// DailyTrackingRepositoryFacade combines all daily tracking-related repository interfaces
type DailyTrackingRepositoryFacade interface {
	DailyTrackingReader
	DailyTrackingWriter
}
