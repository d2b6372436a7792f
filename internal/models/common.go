package models

import "time"

// Timestamps holds the bookkeeping columns shared by most tables.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
