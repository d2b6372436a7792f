package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ExchangeRateResponse defines the structure for API responses containing a stored rate.
type ExchangeRateResponse struct {
	RateDate  time.Time       `json:"rateDate"`
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		RateDate:  rate.RateDate,
		Currency:  rate.Currency,
		Rate:      rate.Rate,
		UpdatedAt: rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain rates to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ClosestRateResponse wraps a rate lookup that may have substituted a nearby date.
type ClosestRateResponse struct {
	ExchangeRateResponse
	RequestedDate  time.Time `json:"requestedDate"`
	SubstitutedDay bool      `json:"substitutedDay"`
}
