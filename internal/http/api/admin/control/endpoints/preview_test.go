package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

// previewStore stubs the read path the resolver needs.
type previewStore struct {
	db.Store
	device    model.Device
	store     model.Store
	playlists map[int]model.Playlist
	schedules []model.Schedule
	defaultID int
}

func (s *previewStore) GetDeviceByID(id int) (model.Device, error) {
	if id != s.device.ID {
		return model.Device{}, errors.New("device not found")
	}
	return s.device, nil
}

func (s *previewStore) GetStoreByID(id int) (model.Store, error) { return s.store, nil }

func (s *previewStore) GetPlaylistByID(id int) (model.Playlist, error) {
	p, ok := s.playlists[id]
	if !ok {
		return model.Playlist{}, errors.New("playlist not found")
	}
	return p, nil
}

func (s *previewStore) ListCampaignsForStore(storeID int) ([]model.Campaign, error) {
	return nil, nil
}

func (s *previewStore) ListSchedulesForStore(storeID int) ([]model.Schedule, error) {
	return s.schedules, nil
}

func (s *previewStore) GetDefaultPlaylistForStore(storeID int) (model.Playlist, error) {
	return s.GetPlaylistByID(s.defaultID)
}

func previewContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func newPreviewStore() *previewStore {
	loop := model.Playlist{
		ID: 99, Name: "Default Loop", Active: true,
		Items: []model.PlaylistItem{
			{ContentID: 1, Position: 1, Content: &model.Content{
				ID: 1, Type: model.ContentTypeImage, URL: "/uploads/a.png",
				DurationSeconds: 15, Active: true,
			}},
		},
	}
	return &previewStore{
		device:    model.Device{ID: 1, StoreID: 1, Active: true},
		store:     model.Store{ID: 1, Timezone: "UTC", Active: true},
		playlists: map[int]model.Playlist{99: loop},
		defaultID: 99,
	}
}

func TestPreviewResolvesPlayout(t *testing.T) {
	ctl := NewPreviewController(newPreviewStore())
	c := previewContext(t, "/api/admin/playout/preview?device_id=1")

	result, apiErr := ctl.preview(c, &model.User{ID: 1})
	require.Nil(t, apiErr)

	response, ok := result.(packets.PlayoutResponse)
	require.True(t, ok)
	assert.Equal(t, "playing", response.State)
	assert.Equal(t, 99, response.PlaylistID)
	assert.Equal(t, "default", response.Source)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "/uploads/a.png", response.Items[0].FileRef)
	assert.Equal(t, 15, response.Items[0].Duration)
}

func TestPreviewHonorsAtParameter(t *testing.T) {
	store := newPreviewStore()
	store.playlists[10] = model.Playlist{
		ID: 10, Name: "Evening", Active: true,
		Items: store.playlists[99].Items,
	}
	store.schedules = []model.Schedule{
		{
			ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeDaily, Active: true,
			StartTime: func() *string { s := "18:00"; return &s }(),
			EndTime:   func() *string { s := "23:00"; return &s }(),
			Priority:  10,
		},
	}
	ctl := NewPreviewController(store)

	c := previewContext(t, "/api/admin/playout/preview?device_id=1&at=2026-03-04T20:00:00Z")
	result, apiErr := ctl.preview(c, &model.User{ID: 1})
	require.Nil(t, apiErr)
	response := result.(packets.PlayoutResponse)
	assert.Equal(t, 10, response.PlaylistID, "evening schedule active at 20:00")

	c = previewContext(t, "/api/admin/playout/preview?device_id=1&at=2026-03-04T08:00:00Z")
	result, apiErr = ctl.preview(c, &model.User{ID: 1})
	require.Nil(t, apiErr)
	response = result.(packets.PlayoutResponse)
	assert.Equal(t, 99, response.PlaylistID, "default plays outside the window")
}

func TestPreviewStandby(t *testing.T) {
	store := newPreviewStore()
	store.playlists[99] = model.Playlist{ID: 99, Name: "Default Loop", Active: true}
	ctl := NewPreviewController(store)

	c := previewContext(t, "/api/admin/playout/preview?device_id=1")
	result, apiErr := ctl.preview(c, &model.User{ID: 1})
	require.Nil(t, apiErr)

	response, ok := result.(packets.PlayoutResponse)
	require.True(t, ok)
	assert.Equal(t, "standby", response.State)
	assert.Zero(t, response.PlaylistID)
}

func TestPreviewBadInput(t *testing.T) {
	ctl := NewPreviewController(newPreviewStore())

	t.Run("missing device_id", func(t *testing.T) {
		c := previewContext(t, "/api/admin/playout/preview")
		_, apiErr := ctl.preview(c, &model.User{ID: 1})
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	})

	t.Run("malformed at", func(t *testing.T) {
		c := previewContext(t, "/api/admin/playout/preview?device_id=1&at=yesterday")
		_, apiErr := ctl.preview(c, &model.User{ID: 1})
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	})

	t.Run("unknown device", func(t *testing.T) {
		c := previewContext(t, "/api/admin/playout/preview?device_id=404")
		_, apiErr := ctl.preview(c, &model.User{ID: 1})
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
	})
}
