package dto

import (
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
)

// TriggerSyncRequest defines the body of a manual synchronization trigger.
type TriggerSyncRequest struct {
	UpdateType string     `json:"updateType" binding:"required,oneof=manual_historical manual_latest"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Currencies []string   `json:"currencies,omitempty" binding:"omitempty,dive,currencycode"`
}

// SyncUpdateResponse defines the API shape of one synchronization run.
type SyncUpdateResponse struct {
	UpdateID     string      `json:"updateID"`
	UpdateType   string      `json:"updateType"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	Currencies   []string    `json:"currencies"`
	Status       string      `json:"status"`
	Error        string      `json:"error,omitempty"`
	MissingDates []time.Time `json:"missingDates,omitempty"`
	RetryCount   int         `json:"retryCount"`
	TriggeredBy  string      `json:"triggeredBy,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
}

// ToSyncUpdateResponse converts a domain.SyncUpdate to SyncUpdateResponse DTO
func ToSyncUpdateResponse(update *domain.SyncUpdate) SyncUpdateResponse {
	return SyncUpdateResponse{
		UpdateID:     update.UpdateID,
		UpdateType:   string(update.UpdateType),
		StartDate:    update.StartDate,
		EndDate:      update.EndDate,
		Currencies:   update.Currencies,
		Status:       string(update.Status),
		Error:        update.Error,
		MissingDates: update.MissingDates,
		RetryCount:   update.RetryCount,
		TriggeredBy:  update.TriggeredBy,
		CreatedAt:    update.CreatedAt,
		CompletedAt:  update.CompletedAt,
	}
}

// ToListSyncUpdateResponse converts a slice of domain sync updates to response DTOs.
func ToListSyncUpdateResponse(updates []domain.SyncUpdate) []SyncUpdateResponse {
	responses := make([]SyncUpdateResponse, len(updates))
	for i := range updates {
		responses[i] = ToSyncUpdateResponse(&updates[i])
	}
	return responses
}
