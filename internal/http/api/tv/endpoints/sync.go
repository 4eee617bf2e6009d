package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	controlpackets "github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/http/middleware"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
	redisclient "github.com/Halcyon-Media-LLC/signet/internal/redis"
)

// syncCacheTTL keeps device polling off the database between admin edits;
// edits invalidate the key directly so the staleness window only covers
// schedule boundaries.
const syncCacheTTL = 15 * time.Second

type SyncController struct {
	store    db.Store
	resolver *playout.Resolver
}

func NewSyncController(store db.Store) *SyncController {
	return &SyncController{store: store, resolver: playout.NewResolver(store)}
}

// RegisterSyncRoutes mounts the device-authenticated playout routes; the
// caller wraps the group with DeviceAuthMiddleware.
func RegisterSyncRoutes(r gin.IRoutes, store db.Store) {
	ctl := NewSyncController(store)

	r.GET("/sync", ctl.sync)
	r.POST("/heartbeat", ctl.heartbeat)
}

// sync resolves what the calling device should be playing right now. Standby
// (nothing resolvable) is a normal 200 so players don't treat it as an outage.
func (s *SyncController) sync(c *gin.Context) {
	device, ok := middleware.GetCurrentDevice(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cacheKey := redisclient.DeviceSyncKey(device.ID)
	if cached := redisclient.Get(c, cacheKey); cached != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	var response controlpackets.PlayoutResponse
	resolution, err := s.resolver.Resolve(device.ID, time.Now())
	switch {
	case err == nil:
		response = syncResponse(resolution)
	case errors.Is(err, playout.ErrNoPlayableContent):
		response = controlpackets.PlayoutResponse{
			State:      "standby",
			ResolvedAt: time.Now().Format(time.RFC3339),
		}
	default:
		log.Error().Err(err).Int("deviceID", device.ID).Msg("[tv] sync resolution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve playout"})
		return
	}

	if body, err := json.Marshal(response); err == nil {
		redisclient.Set(c, cacheKey, string(body), syncCacheTTL)
	}
	c.JSON(http.StatusOK, response)
}

func (s *SyncController) heartbeat(c *gin.Context) {
	device, ok := middleware.GetCurrentDevice(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := s.store.TouchDeviceLastSeen(device.ID); err != nil {
		log.Error().Err(err).Int("deviceID", device.ID).Msg("[tv] heartbeat update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record heartbeat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func syncResponse(r playout.Resolution) controlpackets.PlayoutResponse {
	items := make([]controlpackets.PlayoutItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, controlpackets.PlayoutItemResponse{
			ContentID:  it.ContentID,
			Type:       it.Type,
			FileRef:    it.URL,
			Duration:   it.Duration,
			Transition: it.Transition,
		})
	}
	return controlpackets.PlayoutResponse{
		State:        "playing",
		PlaylistID:   r.PlaylistID,
		PlaylistName: r.PlaylistName,
		Source:       r.Source,
		Items:        items,
		ResolvedAt:   r.ResolvedAt.Format(time.RFC3339),
	}
}
