package models

import "time"

// DailyUpdateTracking marks per (tracking_date, category) whether an update
// attempt was made and whether it found data. Composite primary key.
type DailyUpdateTracking struct {
	TrackingDate time.Time `json:"trackingDate"`
	Category     string    `json:"category"`
	Attempted    bool      `json:"attempted"`
	DataFound    bool      `json:"dataFound"`
	Notes        *string   `json:"notes,omitempty"`
	Timestamps
}
