package repositories

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ETFPriceReader defines read operations for stored ETF prices
type ETFPriceReader interface {
	// FindETFPrice retrieves the price for an ETF on an exact date.
	FindETFPrice(ctx context.Context, etfID string, date time.Time) (*domain.ETFPrice, error)

	// ListETFPrices retrieves prices for an ETF within [from, to], ascending by date.
	ListETFPrices(ctx context.Context, etfID string, from, to time.Time) ([]domain.ETFPrice, error)

	// LatestETFPriceDate returns the most recent date with a stored price for the ETF.
	LatestETFPriceDate(ctx context.Context, etfID string) (time.Time, error)
}

// ETFPriceWriter defines write operations for stored ETF prices
type ETFPriceWriter interface {
	// UpsertETFPrice inserts the price, or updates it by the (etf_id, price_date) key.
	UpsertETFPrice(ctx context.Context, price domain.ETFPrice) error
}

// ETFPriceRepositoryFacade combines all ETF price-related repository interfaces
type ETFPriceRepositoryFacade interface {
	ETFPriceReader
	ETFPriceWriter
}
