package services

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ConversionErrorSvcFacade exposes the durable record of conversions that
// could not be resolved, for operational review and out-of-band resolution.
type ConversionErrorSvcFacade interface {
	// RecordConversionError upserts a record for the (source, target, date)
	// triple. Best-effort: callers on error-recovery paths swallow failures.
	RecordConversionError(ctx context.Context, source, target string, date time.Time, errContext string) error

	// ListUnresolved retrieves unresolved records, oldest first.
	ListUnresolved(ctx context.Context, limit int) ([]domain.ConversionError, error)

	// Resolve marks a record resolved with the current time.
	Resolve(ctx context.Context, errorID string) error
}
