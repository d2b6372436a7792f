package mapping

import (
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
)

// ToModelConversionError converts a domain ConversionError to its model
func ToModelConversionError(d domain.ConversionError) models.ConversionError {
	return models.ConversionError{
		ErrorID:        d.ErrorID,
		SourceCurrency: d.SourceCurrency,
		TargetCurrency: d.TargetCurrency,
		RateDate:       d.RateDate,
		Context:        strOrNil(d.Context),
		Resolved:       d.Resolved,
		ResolvedAt:     d.ResolvedAt,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainConversionError converts a model ConversionError to its domain form
func ToDomainConversionError(m models.ConversionError) domain.ConversionError {
	return domain.ConversionError{
		ErrorID:        m.ErrorID,
		SourceCurrency: m.SourceCurrency,
		TargetCurrency: m.TargetCurrency,
		RateDate:       m.RateDate,
		Context:        strOrEmpty(m.Context),
		Resolved:       m.Resolved,
		ResolvedAt:     m.ResolvedAt,
		CreatedAt:      m.CreatedAt,
	}
}
