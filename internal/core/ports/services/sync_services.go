package services

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// SyncRequest carries the parameters of one synchronization run. StartDate and
// EndDate are optional and interact with the update type; Currencies defaults
// to the configured supported list when empty.
type SyncRequest struct {
	UpdateType  domain.UpdateType
	StartDate   *time.Time
	EndDate     *time.Time
	Currencies  []string
	TriggeredBy string
}

// RateSyncSvc drives the chunked synchronization of exchange rates from the
// external source into the local store.
type RateSyncSvc interface {
	// Synchronize runs one synchronization pass and returns its run record.
	// Per-chunk fetch failures are absorbed into the record's MissingDates;
	// an error return means the run itself could not proceed.
	Synchronize(ctx context.Context, req SyncRequest) (*domain.SyncUpdate, error)

	// GetSyncUpdate retrieves a single run record.
	GetSyncUpdate(ctx context.Context, updateID string) (*domain.SyncUpdate, error)

	// ListRecentSyncUpdates retrieves the most recent run records, newest first.
	ListRecentSyncUpdates(ctx context.Context, limit int) ([]domain.SyncUpdate, error)

	// CleanupSyncUpdates deletes completed run records older than the retention
	// window. Failed runs are retained indefinitely for review.
	CleanupSyncUpdates(ctx context.Context, retainDays int) (int64, error)
}

// RateSyncSvcFacade is the full synchronization service surface.
type RateSyncSvcFacade interface {
	RateSyncSvc
}
