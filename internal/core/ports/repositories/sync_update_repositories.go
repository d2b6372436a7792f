package repositories

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// SyncUpdateReader defines read operations for synchronization run records
type SyncUpdateReader interface {
	// FindSyncUpdateByID retrieves a synchronization run by its ID.
	FindSyncUpdateByID(ctx context.Context, updateID string) (*domain.SyncUpdate, error)

	// ListRecentSyncUpdates retrieves the most recent runs, newest first.
	ListRecentSyncUpdates(ctx context.Context, limit int) ([]domain.SyncUpdate, error)
}

// SyncUpdateWriter defines write operations for synchronization run records
type SyncUpdateWriter interface {
	// CreateSyncUpdate persists a new run record, normally with status processing.
	CreateSyncUpdate(ctx context.Context, update domain.SyncUpdate) error

	// MarkSyncUpdateCompleted finalizes a run as completed, recording the business
	// days that stayed unfetchable and the total number of fetch retries spent.
	MarkSyncUpdateCompleted(ctx context.Context, updateID string, missingDates []time.Time, retryCount int) error

	// MarkSyncUpdateFailed finalizes a run as failed with the escaping error text.
	MarkSyncUpdateFailed(ctx context.Context, updateID string, errMsg string) error

	// DeleteCompletedSyncUpdatesBefore removes completed runs older than the cutoff.
	// Failed runs are never deleted here; they are kept for review.
	DeleteCompletedSyncUpdatesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SyncUpdateRepositoryFacade combines all sync update-related repository interfaces
// This is a facade for clients that need access to all operations
type SyncUpdateRepositoryFacade interface {
	SyncUpdateReader
	SyncUpdateWriter
}
