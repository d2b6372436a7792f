package repositories

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ConversionErrorReader defines read operations for unresolved conversion records
type ConversionErrorReader interface {
	// FindConversionErrorByID retrieves one conversion error record.
	FindConversionErrorByID(ctx context.Context, errorID string) (*domain.ConversionError, error)

	// ListUnresolvedConversionErrors retrieves unresolved records, oldest first.
	ListUnresolvedConversionErrors(ctx context.Context, limit int) ([]domain.ConversionError, error)
}

// ConversionErrorWriter defines write operations for unresolved conversion records
type ConversionErrorWriter interface {
	// RecordConversionError upserts by (source, target, date): a repeated miss
	// updates the context of the existing row instead of inserting a duplicate.
	RecordConversionError(ctx context.Context, source, target string, date time.Time, errContext string) error

	// ResolveConversionError marks the record resolved with the current time.
	ResolveConversionError(ctx context.Context, errorID string) error
}

// ConversionErrorRepositoryFacade combines all conversion error-related repository interfaces
type ConversionErrorRepositoryFacade interface {
	ConversionErrorReader
	ConversionErrorWriter
}
