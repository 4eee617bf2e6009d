package model

import "time"

// Playlist is an ordered collection of content. A playlist with IsDefault set
// is the fallback for its store; a default with no StoreID is the global
// last-resort fallback.
type Playlist struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	StoreID   *int      `db:"store_id"   json:"store_id,omitempty"`
	Priority  int       `db:"priority"   json:"priority"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	Active    bool      `db:"active"     json:"active"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Items []PlaylistItem `db:"-" json:"items,omitempty"`
}

// PlaylistItem fixes a content's position within a playlist. Position is
// unique per playlist; render order is position ascending.
type PlaylistItem struct {
	ID               int       `db:"id"                json:"id"`
	PlaylistID       int       `db:"playlist_id"       json:"playlist_id"`
	ContentID        int       `db:"content_id"        json:"content_id"`
	Position         int       `db:"position"          json:"position"`
	DurationOverride *int      `db:"duration_override" json:"duration_override,omitempty"`
	TransitionType   *string   `db:"transition_type"   json:"transition_type,omitempty"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`

	Content *Content `db:"-" json:"content,omitempty"`
}
