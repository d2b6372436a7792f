package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
)

// ETFPriceObservationRequest is one vendor price quote to ingest.
type ETFPriceObservationRequest struct {
	ETFID    string          `json:"etfID" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Currency string          `json:"currency" binding:"required,currencycode"`
}

// IngestETFPricesRequest defines the body of a price ingestion call.
type IngestETFPricesRequest struct {
	Prices []ETFPriceObservationRequest `json:"prices" binding:"required,min=1,dive"`
}

// ToDomainETFPriceObservations converts the request items to domain observations.
func (r IngestETFPricesRequest) ToDomainETFPriceObservations() []domain.ETFPriceObservation {
	observations := make([]domain.ETFPriceObservation, len(r.Prices))
	for i, p := range r.Prices {
		observations[i] = domain.ETFPriceObservation{
			ETFID:    p.ETFID,
			Date:     p.Date,
			Price:    p.Price,
			Currency: p.Currency,
		}
	}
	return observations
}

// ETFPriceIngestResultResponse reports the outcome of one ingested observation.
type ETFPriceIngestResultResponse struct {
	ETFID        string    `json:"etfID"`
	Date         time.Time `json:"date"`
	UsedFallback bool      `json:"usedFallback"`
}

// ToListETFPriceIngestResultResponse converts service results to response DTOs.
func ToListETFPriceIngestResultResponse(results []portssvc.ETFPriceIngestResult) []ETFPriceIngestResultResponse {
	responses := make([]ETFPriceIngestResultResponse, len(results))
	for i, r := range results {
		responses[i] = ETFPriceIngestResultResponse{
			ETFID:        r.ETFID,
			Date:         r.Date,
			UsedFallback: r.UsedFallback,
		}
	}
	return responses
}

// ETFPriceResponse defines the API shape of one stored ETF price.
type ETFPriceResponse struct {
	ETFID            string          `json:"etfID"`
	PriceDate        time.Time       `json:"priceDate"`
	Price            decimal.Decimal `json:"price"`
	OriginalPrice    decimal.Decimal `json:"originalPrice"`
	OriginalCurrency string          `json:"originalCurrency"`
	UsedFallback     bool            `json:"usedFallback"`
}

// ToETFPriceResponse converts a domain.ETFPrice to its response DTO
func ToETFPriceResponse(p *domain.ETFPrice) ETFPriceResponse {
	return ETFPriceResponse{
		ETFID:            p.ETFID,
		PriceDate:        p.PriceDate,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		OriginalCurrency: p.OriginalCurrency,
		UsedFallback:     p.UsedFallback,
	}
}

// ToListETFPriceResponse converts a slice of domain prices to response DTOs.
func ToListETFPriceResponse(prices []domain.ETFPrice) []ETFPriceResponse {
	responses := make([]ETFPriceResponse, len(prices))
	for i := range prices {
		responses[i] = ToETFPriceResponse(&prices[i])
	}
	return responses
}
