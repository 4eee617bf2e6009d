package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	ScheduleTypeAlways    = "always"
	ScheduleTypeDaily     = "daily"
	ScheduleTypeWeekly    = "weekly"
	ScheduleTypeDateRange = "date_range"
	ScheduleTypeCustom    = "custom"
)

// Schedule binds a playlist to a recurrence rule. Date bounds are inclusive
// and interpreted in the target store's local timezone. Clock bounds use
// "HH:MM"; an end before the start means the window wraps midnight.
// DaysOfWeek uses 1=Monday..7=Sunday. An empty StoreIDs set means the
// schedule is global; otherwise it only applies to the listed stores.
type Schedule struct {
	ID           int            `db:"id"            json:"id"`
	Name         string         `db:"name"          json:"name"`
	PlaylistID   int            `db:"playlist_id"   json:"playlist_id"`
	ScheduleType string         `db:"schedule_type" json:"schedule_type"`
	StartDate    *time.Time     `db:"start_date"    json:"start_date,omitempty"`
	EndDate      *time.Time     `db:"end_date"      json:"end_date,omitempty"`
	StartTime    *string        `db:"start_time"    json:"start_time,omitempty"`
	EndTime      *string        `db:"end_time"      json:"end_time,omitempty"`
	DaysOfWeek   pq.Int64Array  `db:"days_of_week"  json:"days_of_week,omitempty"`
	CustomDates  pq.StringArray `db:"custom_dates"  json:"custom_dates,omitempty"`
	Priority     int            `db:"priority"      json:"priority"`
	Active       bool           `db:"active"        json:"active"`
	CreatedBy    int            `db:"created_by"    json:"created_by"`
	CreatedAt    time.Time      `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"    json:"updated_at"`

	StoreIDs []int64 `db:"-" json:"store_ids,omitempty"`
}
