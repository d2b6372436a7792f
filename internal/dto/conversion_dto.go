package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// ConvertRequest defines the body of an ad-hoc conversion.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
	Date         time.Time       `json:"date" binding:"required"`
}

// ConvertResponse reports a conversion result. UsedFallback marks an amount
// returned unconverted because no rate was available.
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Date         time.Time       `json:"date"`
	UsedFallback bool            `json:"usedFallback"`
}

// ConversionErrorResponse defines the API shape of one unresolved conversion record.
type ConversionErrorResponse struct {
	ErrorID        string     `json:"errorID"`
	SourceCurrency string     `json:"sourceCurrency"`
	TargetCurrency string     `json:"targetCurrency"`
	RateDate       time.Time  `json:"rateDate"`
	Context        string     `json:"context,omitempty"`
	Resolved       bool       `json:"resolved"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToConversionErrorResponse converts a domain.ConversionError to its response DTO
func ToConversionErrorResponse(e *domain.ConversionError) ConversionErrorResponse {
	return ConversionErrorResponse{
		ErrorID:        e.ErrorID,
		SourceCurrency: e.SourceCurrency,
		TargetCurrency: e.TargetCurrency,
		RateDate:       e.RateDate,
		Context:        e.Context,
		Resolved:       e.Resolved,
		ResolvedAt:     e.ResolvedAt,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListConversionErrorResponse converts a slice of domain records to response DTOs.
func ToListConversionErrorResponse(errs []domain.ConversionError) []ConversionErrorResponse {
	responses := make([]ConversionErrorResponse, len(errs))
	for i := range errs {
		responses[i] = ToConversionErrorResponse(&errs[i])
	}
	return responses
}
