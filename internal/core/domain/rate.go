package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the stored daily rate for one currency against the base
// currency: 1 unit of the base currency buys Rate units of Currency.
// There is at most one row per (RateDate, Currency).
type ExchangeRate struct {
	RateDate time.Time       `json:"rateDate"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
	Timestamps
}

// RateObservation is a single (date, rate) point as returned by an external
// rate source, before it has been merged into the store.
type RateObservation struct {
	Date time.Time
	Rate decimal.Decimal
}
