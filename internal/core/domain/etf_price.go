package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ETFPrice is a stored closing price for one ETF on one date, converted into
// the base currency. The original vendor quote is kept alongside the
// converted value so conversions stay auditable; UsedFallback marks prices
// that could not be converted and were stored at their original value.
type ETFPrice struct {
	ETFID            string          `json:"etfID"`
	PriceDate        time.Time       `json:"priceDate"`
	Price            decimal.Decimal `json:"price"` // in base currency unless UsedFallback
	OriginalPrice    decimal.Decimal `json:"originalPrice"`
	OriginalCurrency string          `json:"originalCurrency"`
	UsedFallback     bool            `json:"usedFallback"`
	Timestamps
}

// ETFPriceObservation is a vendor price quote before conversion, as handed to
// the ingestion service by whichever adapter produced it.
type ETFPriceObservation struct {
	ETFID    string
	Date     time.Time
	Price    decimal.Decimal
	Currency string
}
