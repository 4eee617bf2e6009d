package model

import "time"

// Device is a playback endpoint bound to exactly one store.
// CurrentPlaylistID is the admin pin: when set it bypasses all scheduling.
type Device struct {
	ID                int        `db:"id"                  json:"id"`
	DeviceCode        string     `db:"device_code"         json:"device_code"`
	Name              string     `db:"name"                json:"name"`
	StoreID           int        `db:"store_id"            json:"store_id"`
	CurrentPlaylistID *int       `db:"current_playlist_id" json:"current_playlist_id,omitempty"`
	APIToken          *string    `db:"api_token"           json:"-"`
	Paired            bool       `db:"paired"              json:"paired"`
	Active            bool       `db:"active"              json:"active"`
	LastSeenAt        *time.Time `db:"last_seen_at"        json:"last_seen_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at"          json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"          json:"updated_at"`
}
