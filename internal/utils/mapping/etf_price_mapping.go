package mapping

import (
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
)

// ToModelETFPrice converts a domain ETFPrice to a model ETFPrice
func ToModelETFPrice(d domain.ETFPrice) models.ETFPrice {
	return models.ETFPrice{
		ETFID:            d.ETFID,
		PriceDate:        d.PriceDate,
		Price:            d.Price,
		OriginalPrice:    d.OriginalPrice,
		OriginalCurrency: d.OriginalCurrency,
		UsedFallback:     d.UsedFallback,
		Timestamps:       ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainETFPrice converts a model ETFPrice to a domain ETFPrice
func ToDomainETFPrice(m models.ETFPrice) domain.ETFPrice {
	return domain.ETFPrice{
		ETFID:            m.ETFID,
		PriceDate:        m.PriceDate,
		Price:            m.Price,
		OriginalPrice:    m.OriginalPrice,
		OriginalCurrency: m.OriginalCurrency,
		UsedFallback:     m.UsedFallback,
		Timestamps:       ToDomainTimestamps(m.Timestamps),
	}
}
