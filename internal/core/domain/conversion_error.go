package domain

import "time"

// ConversionError is a durable record of a currency conversion that could not
// be fully resolved: either no rate existed within the fallback window, or a
// substitute date had to be used. Unique per (SourceCurrency, TargetCurrency,
// RateDate); repeated misses update Context rather than inserting duplicates.
// Rows are resolved out of band, by review or by a later successful backfill.
type ConversionError struct {
	ErrorID        string     `json:"errorID"`
	SourceCurrency string     `json:"sourceCurrency"`
	TargetCurrency string     `json:"targetCurrency"`
	RateDate       time.Time  `json:"rateDate"`
	Context        string     `json:"context,omitempty"`
	Resolved       bool       `json:"resolved"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
