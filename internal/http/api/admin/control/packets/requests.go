package packets

type CreateStoreRequest struct {
	Code     string  `json:"code" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	City     *string `json:"city"`
	Region   *string `json:"region"`
	Timezone string  `json:"timezone"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Region   *string `json:"region"`
	Timezone *string `json:"timezone"`
	Active   *bool   `json:"active"`
}

type CreateDeviceRequest struct {
	Name    string `json:"name" binding:"required"`
	StoreID int    `json:"store_id" binding:"required"`
}

type UpdateDeviceRequest struct {
	Name    *string `json:"name"`
	StoreID *int    `json:"store_id"`
	Active  *bool   `json:"active"`
}

// SetOverrideRequest pins a playlist on a device; a null playlist_id unpins.
type SetOverrideRequest struct {
	PlaylistID *int `json:"playlist_id"`
}

type ConfirmPairRequest struct {
	PairingCode string `json:"pairing_code" binding:"required"`
}

type UpdateContentRequest struct {
	Name            *string `json:"name"`
	URL             *string `json:"url"`
	DurationSeconds *int    `json:"duration_seconds"`
	Active          *bool   `json:"active"`
}

type CreatePlaylistRequest struct {
	Name      string `json:"name" binding:"required"`
	StoreID   *int   `json:"store_id"`
	Priority  int    `json:"priority"`
	IsDefault bool   `json:"is_default"`
}

type UpdatePlaylistRequest struct {
	Name      *string `json:"name"`
	Priority  *int    `json:"priority"`
	IsDefault *bool   `json:"is_default"`
	Active    *bool   `json:"active"`
}

type AddPlaylistItemRequest struct {
	ContentID        int     `json:"content_id" binding:"required"`
	Position         int     `json:"position" binding:"required"`
	DurationOverride *int    `json:"duration_override"`
	TransitionType   *string `json:"transition_type"`
}

type UpdatePlaylistItemRequest struct {
	Position         *int    `json:"position"`
	DurationOverride *int    `json:"duration_override"`
	TransitionType   *string `json:"transition_type"`
}

type ReorderPlaylistRequest struct {
	ItemIDs []int `json:"item_ids" binding:"required"`
}

// Schedule dates use "2006-01-02"; clock values use "HH:MM".
type CreateScheduleRequest struct {
	Name         string   `json:"name" binding:"required"`
	PlaylistID   int      `json:"playlist_id" binding:"required"`
	ScheduleType string   `json:"schedule_type" binding:"required"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	DaysOfWeek   []int64  `json:"days_of_week"`
	CustomDates  []string `json:"custom_dates"`
	Priority     int      `json:"priority"`
	StoreIDs     []int64  `json:"store_ids"`
}

type UpdateScheduleRequest struct {
	Name         *string  `json:"name"`
	PlaylistID   *int     `json:"playlist_id"`
	ScheduleType *string  `json:"schedule_type"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	DaysOfWeek   []int64  `json:"days_of_week"`
	CustomDates  []string `json:"custom_dates"`
	Priority     *int     `json:"priority"`
	Active       *bool    `json:"active"`
	StoreIDs     []int64  `json:"store_ids"`
}

type CreateCampaignRequest struct {
	Name       string  `json:"name" binding:"required"`
	PlaylistID *int    `json:"playlist_id"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	Priority   int     `json:"priority"`
	StoreIDs   []int64 `json:"store_ids"`
}

type UpdateCampaignRequest struct {
	Name       *string `json:"name"`
	PlaylistID *int    `json:"playlist_id"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Status     *string `json:"status"`
	Priority   *int    `json:"priority"`
	StoreIDs   []int64 `json:"store_ids"`
}
