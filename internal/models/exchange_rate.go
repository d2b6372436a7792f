package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the daily rate of one currency against the base
// currency: 1 base unit = Rate units of Currency.
// Unique on (rate_date, currency).
type ExchangeRate struct {
	RateDate time.Time       `json:"rateDate"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"` // Precise decimal type
	Timestamps
}
