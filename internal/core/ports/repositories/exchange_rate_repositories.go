package repositories

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for stored exchange rates
type ExchangeRateReader interface {
	// FindRate retrieves the rate for a currency on an exact date.
	FindRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error)

	// FindClosestRate retrieves the rate for the exact date, falling back to the
	// adjacent days. When both neighbours exist the later one wins.
	FindClosestRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error)

	// LatestRateDate returns the most recent date with a stored rate for the currency.
	LatestRateDate(ctx context.Context, currency string) (time.Time, error)

	// ListRates retrieves all rates for a currency within [from, to], ascending by date.
	ListRates(ctx context.Context, currency string, from, to time.Time) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for stored exchange rates
type ExchangeRateWriter interface {
	// UpsertRate inserts the rate, or updates it when the stored value differs.
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpsertRates upserts a batch of rates within a single transaction.
	UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
