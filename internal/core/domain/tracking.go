package domain

import (
	"fmt"
	"time"
)

// TrackingCategoryExchangeRates is the daily-tracking category for the
// exchange rate sync as a whole.
const TrackingCategoryExchangeRates = "exchange_rates"

// ETFPriceTrackingCategory returns the per-ETF daily-tracking category key.
func ETFPriceTrackingCategory(etfID string) string {
	return fmt.Sprintf("etf_prices_%s", etfID)
}

// DailyUpdateTracking marks, per calendar day and update category, whether an
// update attempt was made and whether it found data. Exactly one row exists
// per (TrackingDate, Category); re-marking upserts the same row. The catch-up
// check reads this to avoid hammering sources on weekends and holidays.
type DailyUpdateTracking struct {
	TrackingDate time.Time `json:"trackingDate"`
	Category     string    `json:"category"`
	Attempted    bool      `json:"attempted"`
	DataFound    bool      `json:"dataFound"`
	Notes        string    `json:"notes,omitempty"`
	Timestamps
}
