package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ETFPrice stores one converted closing price per (etf_id, price_date),
// keeping the original vendor quote for auditability.
type ETFPrice struct {
	ETFID            string          `json:"etfID"`
	PriceDate        time.Time       `json:"priceDate"`
	Price            decimal.Decimal `json:"price"`
	OriginalPrice    decimal.Decimal `json:"originalPrice"`
	OriginalCurrency string          `json:"originalCurrency"`
	UsedFallback     bool            `json:"usedFallback"`
	Timestamps
}
