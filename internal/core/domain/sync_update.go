package domain

import "time"

// UpdateType selects the behavior of a synchronization run.
type UpdateType string

const (
	UpdateTypeScheduledDaily      UpdateType = "scheduled_daily"
	UpdateTypeScheduledHistorical UpdateType = "scheduled_historical"
	UpdateTypeManualHistorical    UpdateType = "manual_historical"
	UpdateTypeManualLatest        UpdateType = "manual_latest"
	UpdateTypeStartupCatchup      UpdateType = "startup_catchup"
)

// Valid reports whether t is one of the known update types.
func (t UpdateType) Valid() bool {
	switch t {
	case UpdateTypeScheduledDaily, UpdateTypeScheduledHistorical,
		UpdateTypeManualHistorical, UpdateTypeManualLatest, UpdateTypeStartupCatchup:
		return true
	}
	return false
}

// SyncStatus is the lifecycle state of a synchronization run.
// Terminal states are completed and failed.
type SyncStatus string

const (
	SyncStatusPending    SyncStatus = "pending"
	SyncStatusProcessing SyncStatus = "processing"
	SyncStatusCompleted  SyncStatus = "completed"
	SyncStatusFailed     SyncStatus = "failed"
)

// SyncUpdate records one invocation of the rate synchronization engine for a
// batch of currencies. MissingDates contains only business days that remained
// unfetchable after retries; "some dates missing" is a completed run, failed
// is reserved for runs where the process itself broke.
type SyncUpdate struct {
	UpdateID     string      `json:"updateID"`
	UpdateType   UpdateType  `json:"updateType"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	Currencies   []string    `json:"currencies"`
	Status       SyncStatus  `json:"status"`
	Error        string      `json:"error,omitempty"`
	MissingDates []time.Time `json:"missingDates,omitempty"`
	RetryCount   int         `json:"retryCount"`
	TriggeredBy  string      `json:"triggeredBy,omitempty"` // operator user ID for manual runs
	CreatedAt    time.Time   `json:"createdAt"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
}
