package mapping

import (
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
)

// ToModelSyncUpdate converts a domain SyncUpdate to a model SyncUpdate.
// currencies and missing_dates map to NOT NULL array columns; a nil slice
// would encode as SQL NULL, so both are coalesced to empty arrays.
func ToModelSyncUpdate(d domain.SyncUpdate) models.SyncUpdate {
	currencies := d.Currencies
	if currencies == nil {
		currencies = []string{}
	}
	missingDates := d.MissingDates
	if missingDates == nil {
		missingDates = []time.Time{}
	}
	return models.SyncUpdate{
		UpdateID:     d.UpdateID,
		UpdateType:   string(d.UpdateType),
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Currencies:   currencies,
		Status:       string(d.Status),
		Error:        strOrNil(d.Error),
		MissingDates: missingDates,
		RetryCount:   d.RetryCount,
		TriggeredBy:  strOrNil(d.TriggeredBy),
		CreatedAt:    d.CreatedAt,
		CompletedAt:  d.CompletedAt,
	}
}

// ToDomainSyncUpdate converts a model SyncUpdate to a domain SyncUpdate
func ToDomainSyncUpdate(m models.SyncUpdate) domain.SyncUpdate {
	return domain.SyncUpdate{
		UpdateID:     m.UpdateID,
		UpdateType:   domain.UpdateType(m.UpdateType),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Currencies:   m.Currencies,
		Status:       domain.SyncStatus(m.Status),
		Error:        strOrEmpty(m.Error),
		MissingDates: m.MissingDates,
		RetryCount:   m.RetryCount,
		TriggeredBy:  strOrEmpty(m.TriggeredBy),
		CreatedAt:    m.CreatedAt,
		CompletedAt:  m.CompletedAt,
	}
}
