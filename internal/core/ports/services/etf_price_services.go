package services

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ETFPriceIngestResult reports the outcome of ingesting one price observation.
type ETFPriceIngestResult struct {
	ETFID        string
	Date         time.Time
	UsedFallback bool
}

// ETFPriceSvcFacade ingests vendor price observations, converting them into
// the base currency. The vendor adapters that produce observations live
// outside this backend; they hand batches to IngestPrices.
type ETFPriceSvcFacade interface {
	// IngestPrices converts and persists a batch of observations. The original
	// currency and price are stored alongside the converted value. Items whose
	// conversion fell back keep their original value and are flagged.
	IngestPrices(ctx context.Context, observations []domain.ETFPriceObservation) ([]ETFPriceIngestResult, error)

	// GetPrice retrieves the stored price for an ETF on an exact date.
	GetPrice(ctx context.Context, etfID string, date time.Time) (*domain.ETFPrice, error)

	// ListPrices retrieves stored prices for an ETF within [from, to].
	ListPrices(ctx context.Context, etfID string, from, to time.Time) ([]domain.ETFPrice, error)
}
