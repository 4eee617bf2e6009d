package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

// campaignStore captures what the handler asks to persist.
type campaignStore struct {
	db.Store
	created model.Campaign
}

func (s *campaignStore) GetPlaylistByID(id int) (model.Playlist, error) {
	return model.Playlist{ID: id, Active: true}, nil
}

func (s *campaignStore) CreateCampaign(c model.Campaign, createdBy int) (model.Campaign, error) {
	s.created = c
	c.ID = 1
	return c, nil
}

func (s *campaignStore) SetCampaignStores(campaignID int, storeIDs []int64) error { return nil }

func (s *campaignStore) ListDevicesForStores(storeIDs []int64) ([]model.Device, error) {
	return nil, nil
}

func campaignContext(t *testing.T, body any) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/campaigns", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestInitialCampaignStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	day := func(s string) time.Time {
		parsed, err := time.Parse(dateLayout, s)
		require.NoError(t, err)
		return parsed
	}

	assert.Equal(t, model.CampaignStatusPending, initialCampaignStatus(day("2026-04-01"), day("2026-04-30"), now))
	assert.Equal(t, model.CampaignStatusActive, initialCampaignStatus(day("2026-03-01"), day("2026-03-31"), now))
	assert.Equal(t, model.CampaignStatusActive, initialCampaignStatus(day("2026-03-15"), day("2026-03-15"), now), "window opening today is already active")
	assert.Equal(t, model.CampaignStatusCompleted, initialCampaignStatus(day("2026-02-01"), day("2026-02-28"), now))
}

func TestCreateCampaignPersistsDerivedStatus(t *testing.T) {
	store := &campaignStore{}
	ctl := NewCampaignController(store)

	today := time.Now().Format(dateLayout)
	c := campaignContext(t, packets.CreateCampaignRequest{
		Name:       "Flash Sale",
		PlaylistID: intPtr(10),
		StartDate:  today,
		EndDate:    today,
		Priority:   5,
	})

	result, apiErr := ctl.createCampaign(c, &model.User{ID: 1})
	require.Nil(t, apiErr)

	// the status handed to the store must match what the sweep would decide,
	// not the zero value
	assert.Equal(t, model.CampaignStatusActive, store.created.Status)

	response, ok := result.(packets.CampaignResponse)
	require.True(t, ok)
	assert.Equal(t, string(model.CampaignStatusActive), response.Status)
}

func TestCreateCampaignRejectsInvertedWindow(t *testing.T) {
	store := &campaignStore{}
	ctl := NewCampaignController(store)

	c := campaignContext(t, packets.CreateCampaignRequest{
		Name:      "Backwards",
		StartDate: "2026-03-31",
		EndDate:   "2026-03-01",
	})

	_, apiErr := ctl.createCampaign(c, &model.User{ID: 1})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func intPtr(i int) *int { return &i }
