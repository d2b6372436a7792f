package mapping

import (
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
)

// ToModelDailyUpdateTracking converts a domain DailyUpdateTracking to its model
func ToModelDailyUpdateTracking(d domain.DailyUpdateTracking) models.DailyUpdateTracking {
	return models.DailyUpdateTracking{
		TrackingDate: d.TrackingDate,
		Category:     d.Category,
		Attempted:    d.Attempted,
		DataFound:    d.DataFound,
		Notes:        strOrNil(d.Notes),
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainDailyUpdateTracking converts a model DailyUpdateTracking to its domain form
func ToDomainDailyUpdateTracking(m models.DailyUpdateTracking) domain.DailyUpdateTracking {
	return domain.DailyUpdateTracking{
		TrackingDate: m.TrackingDate,
		Category:     m.Category,
		Attempted:    m.Attempted,
		DataFound:    m.DataFound,
		Notes:        strOrEmpty(m.Notes),
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}
