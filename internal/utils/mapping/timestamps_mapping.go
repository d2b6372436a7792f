package mapping

import (
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
)

// ToModelTimestamps converts domain timestamps to model timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainTimestamps converts model timestamps to domain timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// strOrEmpty dereferences an optional text column.
func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// strOrNil maps an empty string to a NULL text column.
func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
