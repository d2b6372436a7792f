package models

import "time"

// SyncUpdate records one invocation of the rate synchronization engine.
// Currencies and MissingDates map to text[]/date[] columns.
type SyncUpdate struct {
	UpdateID     string      `json:"updateID"` // Primary Key (UUID)
	UpdateType   string      `json:"updateType"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	Currencies   []string    `json:"currencies"`
	Status       string      `json:"status"`
	Error        *string     `json:"error,omitempty"`
	MissingDates []time.Time `json:"missingDates,omitempty"`
	RetryCount   int         `json:"retryCount"`
	TriggeredBy  *string     `json:"triggeredBy,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
}
