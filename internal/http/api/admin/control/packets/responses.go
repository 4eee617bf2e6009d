package packets

type StoreResponse struct {
	ID        int     `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      *string `json:"city,omitempty"`
	Region    *string `json:"region,omitempty"`
	Timezone  string  `json:"timezone"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type DeviceResponse struct {
	ID                int     `json:"id"`
	DeviceCode        string  `json:"device_code"`
	Name              string  `json:"name"`
	StoreID           int     `json:"store_id"`
	CurrentPlaylistID *int    `json:"current_playlist_id,omitempty"`
	Paired            bool    `json:"paired"`
	Active            bool    `json:"active"`
	LastSeenAt        *string `json:"last_seen_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ContentResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"created_at"`
}

type PlaylistItemResponse struct {
	ID               int     `json:"id"`
	ContentID        int     `json:"content_id"`
	Position         int     `json:"position"`
	DurationOverride *int    `json:"duration_override,omitempty"`
	TransitionType   *string `json:"transition_type,omitempty"`
	ContentName      string  `json:"content_name,omitempty"`
	ContentType      string  `json:"content_type,omitempty"`
}

type PlaylistResponse struct {
	ID        int                    `json:"id"`
	Name      string                 `json:"name"`
	StoreID   *int                   `json:"store_id,omitempty"`
	Priority  int                    `json:"priority"`
	IsDefault bool                   `json:"is_default"`
	Active    bool                   `json:"active"`
	Items     []PlaylistItemResponse `json:"items"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

type ScheduleResponse struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	PlaylistID   int      `json:"playlist_id"`
	ScheduleType string   `json:"schedule_type"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	StartTime    *string  `json:"start_time,omitempty"`
	EndTime      *string  `json:"end_time,omitempty"`
	DaysOfWeek   []int64  `json:"days_of_week,omitempty"`
	CustomDates  []string `json:"custom_dates,omitempty"`
	Priority     int      `json:"priority"`
	Active       bool     `json:"active"`
	StoreIDs     []int64  `json:"store_ids,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type CampaignResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	PlaylistID *int    `json:"playlist_id,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	Priority   int     `json:"priority"`
	StoreIDs   []int64 `json:"store_ids,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type PlayoutItemResponse struct {
	ContentID  int    `json:"content_id"`
	Type       string `json:"type"`
	FileRef    string `json:"file_ref"`
	Duration   int    `json:"duration"`
	Transition string `json:"transition"`
}

// PlayoutResponse is shared by the admin preview and the device sync body.
// State is "playing" or "standby"; the playlist fields are zero on standby.
type PlayoutResponse struct {
	State        string                `json:"state"`
	PlaylistID   int                   `json:"playlist_id,omitempty"`
	PlaylistName string                `json:"playlist_name,omitempty"`
	Source       string                `json:"source,omitempty"`
	Items        []PlayoutItemResponse `json:"items,omitempty"`
	ResolvedAt   string                `json:"resolved_at"`
}
