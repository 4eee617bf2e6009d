package model

import "time"

const (
	ContentTypeVideo        = "video"
	ContentTypeImage        = "image"
	ContentTypeSlider       = "slider"
	ContentTypeTicker       = "ticker"
	ContentTypeAnnouncement = "announcement"
)

type Content struct {
	ID              int       `db:"id"               json:"id"`
	Name            string    `db:"name"             json:"name"`
	Type            string    `db:"type"             json:"type"`
	URL             string    `db:"url"              json:"url"`
	DurationSeconds int       `db:"duration_seconds" json:"duration_seconds"`
	Active          bool      `db:"active"           json:"active"`
	CreatedBy       int       `db:"created_by"       json:"created_by"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}
