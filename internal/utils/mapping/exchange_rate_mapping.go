package mapping

import (
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		RateDate:   d.RateDate,
		Currency:   d.Currency,
		Rate:       d.Rate,
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		RateDate:   m.RateDate,
		Currency:   m.Currency,
		Rate:       m.Rate,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}
