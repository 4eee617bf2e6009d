package model

import "time"

// Store is a physical location that owns playback devices.
type Store struct {
	ID        int       `db:"id"         json:"id"`
	Code      string    `db:"code"       json:"code"`
	Name      string    `db:"name"       json:"name"`
	City      *string   `db:"city"       json:"city,omitempty"`
	Region    *string   `db:"region"     json:"region,omitempty"`
	Timezone  string    `db:"timezone"   json:"timezone"`
	Active    bool      `db:"active"     json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
