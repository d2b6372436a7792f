package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// RateStoreReaderSvc defines read operations for stored exchange rates
type RateStoreReaderSvc interface {
	// GetRate retrieves the rate for a currency on an exact date.
	GetRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error)

	// GetClosestRate retrieves the rate for the exact date, falling back to the
	// adjacent days; the later neighbour wins when both exist.
	GetClosestRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error)

	// LatestRateDate returns the watermark: the most recent stored date for the currency.
	LatestRateDate(ctx context.Context, currency string) (time.Time, error)

	// ListRates retrieves all rates for a currency within [from, to], ascending by date.
	ListRates(ctx context.Context, currency string, from, to time.Time) ([]domain.ExchangeRate, error)
}

// RateStoreWriterSvc defines write operations for stored exchange rates
type RateStoreWriterSvc interface {
	// UpsertRates merges a batch of rates into the store in one transaction.
	UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// RateStoreSvcFacade combines all rate store-related service interfaces
type RateStoreSvcFacade interface {
	RateStoreReaderSvc
	RateStoreWriterSvc
}

// ConverterSvc converts amounts between currencies using stored rates.
type ConverterSvc interface {
	// Convert converts amount from one currency to another on the given date.
	// usedFallback is true only when no rate existed within the fallback window
	// and the amount is returned unconverted; a nearby-date substitution is not
	// a fallback. err reports infrastructure faults, never a missing rate.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string, date time.Time) (converted decimal.Decimal, usedFallback bool, err error)
}
