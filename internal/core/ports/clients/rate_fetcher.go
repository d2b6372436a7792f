package clients

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// RateFetcher retrieves daily exchange rate observations from an external
// time-series source. The return shape is deliberately tri-state so the sync
// engine can make its retry decision without inspecting error internals:
//
//   - observations + nil error: data for the range
//   - empty slice + nil error:  the source has no data for the range (weekend,
//     holiday, or a range in the future)
//   - nil + error:              transient failure (network, non-success status,
//     malformed payload); safe to retry
type RateFetcher interface {
	// FetchRates returns all (date, rate) observations for the currency against
	// the base currency within [start, end] inclusive.
	FetchRates(ctx context.Context, currency string, start, end time.Time) ([]domain.RateObservation, error)
}
