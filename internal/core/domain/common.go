package domain

import "time"

// Timestamps holds standard bookkeeping information for persisted entities.
// Rows written by the sync engine have no acting user, so there is no
// created-by reference here; manually triggered runs record the operator
// on the SyncUpdate itself.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
