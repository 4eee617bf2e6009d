package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/http/middleware"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
	redisclient "github.com/Halcyon-Media-LLC/signet/internal/redis"
)

const dateLayout = "2006-01-02"

// pairingTTL bounds how long a registered pairing code (and the token handed
// back to the polling device) lives in Redis.
const pairingTTL = 5 * time.Minute

func parseDateField(value *string, field string) (*time.Time, *api.APIError) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid %s, expected YYYY-MM-DD", field)}
	}
	return &t, nil
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func storeResponse(s model.Store) packets.StoreResponse {
	return packets.StoreResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		City:      s.City,
		Region:    s.Region,
		Timezone:  s.Timezone,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func deviceResponse(d model.Device) packets.DeviceResponse {
	var lastSeen *string
	if d.LastSeenAt != nil {
		s := d.LastSeenAt.Format(time.RFC3339)
		lastSeen = &s
	}
	return packets.DeviceResponse{
		ID:                d.ID,
		DeviceCode:        d.DeviceCode,
		Name:              d.Name,
		StoreID:           d.StoreID,
		CurrentPlaylistID: d.CurrentPlaylistID,
		Paired:            d.Paired,
		Active:            d.Active,
		LastSeenAt:        lastSeen,
		CreatedAt:         d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         d.UpdatedAt.Format(time.RFC3339),
	}
}

func contentResponse(c model.Content) packets.ContentResponse {
	return packets.ContentResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            c.Type,
		URL:             c.URL,
		DurationSeconds: c.DurationSeconds,
		Active:          c.Active,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func playlistResponse(p model.Playlist) packets.PlaylistResponse {
	items := make([]packets.PlaylistItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		res := packets.PlaylistItemResponse{
			ID:               it.ID,
			ContentID:        it.ContentID,
			Position:         it.Position,
			DurationOverride: it.DurationOverride,
			TransitionType:   it.TransitionType,
		}
		if it.Content != nil {
			res.ContentName = it.Content.Name
			res.ContentType = it.Content.Type
		}
		items = append(items, res)
	}
	return packets.PlaylistResponse{
		ID:        p.ID,
		Name:      p.Name,
		StoreID:   p.StoreID,
		Priority:  p.Priority,
		IsDefault: p.IsDefault,
		Active:    p.Active,
		Items:     items,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func scheduleResponse(s model.Schedule) packets.ScheduleResponse {
	return packets.ScheduleResponse{
		ID:           s.ID,
		Name:         s.Name,
		PlaylistID:   s.PlaylistID,
		ScheduleType: s.ScheduleType,
		StartDate:    formatDatePtr(s.StartDate),
		EndDate:      formatDatePtr(s.EndDate),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		DaysOfWeek:   s.DaysOfWeek,
		CustomDates:  s.CustomDates,
		Priority:     s.Priority,
		Active:       s.Active,
		StoreIDs:     s.StoreIDs,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

func campaignResponse(c model.Campaign) packets.CampaignResponse {
	return packets.CampaignResponse{
		ID:         c.ID,
		Name:       c.Name,
		PlaylistID: c.PlaylistID,
		StartDate:  c.StartDate.Format(dateLayout),
		EndDate:    c.EndDate.Format(dateLayout),
		Status:     string(c.Status),
		Priority:   c.Priority,
		StoreIDs:   c.StoreIDs,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

func playoutResponse(r playout.Resolution) packets.PlayoutResponse {
	items := make([]packets.PlayoutItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, packets.PlayoutItemResponse{
			ContentID:  it.ContentID,
			Type:       it.Type,
			FileRef:    it.URL,
			Duration:   it.Duration,
			Transition: it.Transition,
		})
	}
	return packets.PlayoutResponse{
		State:        "playing",
		PlaylistID:   r.PlaylistID,
		PlaylistName: r.PlaylistName,
		Source:       r.Source,
		Items:        items,
		ResolvedAt:   r.ResolvedAt.Format(time.RFC3339),
	}
}

// refreshDevice drops the device's cached sync response and nudges it over
// MQTT so the change lands before the next poll.
func refreshDevice(d model.Device) {
	redisclient.Del(context.Background(), redisclient.DeviceSyncKey(d.ID))
	middleware.PublishRefresh(d.DeviceCode)
}

// mergeScopes unions two store scopes for a refresh fan-out. Either side
// being empty means global, which swallows the union.
func mergeScopes(a, b []int64) []int64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	seen := make(map[int64]bool, len(a)+len(b))
	merged := make([]int64, 0, len(a)+len(b))
	for _, id := range append(append([]int64{}, a...), b...) {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}
	return merged
}

// refreshStoreDevices refreshes every device in the given stores; an empty
// id set means every device (global schedule or all-stores campaign).
func refreshStoreDevices(store db.Store, storeIDs []int64) {
	devices, err := store.ListDevicesForStores(storeIDs)
	if err != nil {
		return
	}
	for _, d := range devices {
		refreshDevice(d)
	}
}
