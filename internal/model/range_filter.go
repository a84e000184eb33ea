package model

import (
	"time"

	"github.com/google/uuid"
)

// RangeFilter is a date range a user last chose on a dashboard filter panel,
// e.g. the expense report or the leave approvals list. Dates are canonical
// YYYY-MM-DD strings in the dashboard's local calendar.
type RangeFilter struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Key       string    `db:"filter_key" json:"key"`
	StartDate string    `db:"start_date" json:"startDate"`
	EndDate   string    `db:"end_date" json:"endDate"`
	Preset    *string   `db:"preset" json:"preset,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
