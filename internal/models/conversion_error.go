package models

import "time"

// ConversionError records a conversion that could not be fully resolved.
// Unique on (source_currency, target_currency, rate_date).
type ConversionError struct {
	ErrorID        string     `json:"errorID"` // Primary Key (UUID)
	SourceCurrency string     `json:"sourceCurrency"`
	TargetCurrency string     `json:"targetCurrency"`
	RateDate       time.Time  `json:"rateDate"`
	Context        *string    `json:"context,omitempty"`
	Resolved       bool       `json:"resolved"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
