package model

import "time"

type CampaignStatus string

const (
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// Campaign is a date-ranged promotional override. Status is an advisory
// cache maintained by the periodic sweep; playout activity is always
// re-derived from the date bounds. A campaign with no playlist is inert and
// an empty StoreIDs set targets every store.
type Campaign struct {
	ID         int            `db:"id"          json:"id"`
	Name       string         `db:"name"        json:"name"`
	PlaylistID *int           `db:"playlist_id" json:"playlist_id,omitempty"`
	StartDate  time.Time      `db:"start_date"  json:"start_date"`
	EndDate    time.Time      `db:"end_date"    json:"end_date"`
	Status     CampaignStatus `db:"status"      json:"status"`
	Priority   int            `db:"priority"    json:"priority"`
	CreatedBy  int            `db:"created_by"  json:"created_by"`
	CreatedAt  time.Time      `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"  json:"updated_at"`

	StoreIDs []int64 `db:"-" json:"store_ids,omitempty"`
}
