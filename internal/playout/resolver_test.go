package playout_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

type fakeSource struct {
	devices   map[int]model.Device
	stores    map[int]model.Store
	playlists map[int]model.Playlist
	campaigns []model.Campaign
	schedules []model.Schedule
	defaultID int
}

func (f *fakeSource) GetDeviceByID(id int) (model.Device, error) {
	d, ok := f.devices[id]
	if !ok {
		return model.Device{}, fmt.Errorf("device %d not found", id)
	}
	return d, nil
}

func (f *fakeSource) GetStoreByID(id int) (model.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return model.Store{}, fmt.Errorf("store %d not found", id)
	}
	return s, nil
}

func (f *fakeSource) GetPlaylistByID(id int) (model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return model.Playlist{}, fmt.Errorf("playlist %d not found", id)
	}
	return p, nil
}

func (f *fakeSource) ListCampaignsForStore(storeID int) ([]model.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeSource) ListSchedulesForStore(storeID int) ([]model.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeSource) GetDefaultPlaylistForStore(storeID int) (model.Playlist, error) {
	return f.GetPlaylistByID(f.defaultID)
}

func playlistWithContent(id int, name string) model.Playlist {
	return model.Playlist{
		ID:     id,
		Name:   name,
		Active: true,
		Items: []model.PlaylistItem{
			{ContentID: id * 100, Position: 1, Content: content(id*100, 10)},
		},
	}
}

// newFixture wires a store, a device, and a populated default playlist.
func newFixture(t *testing.T) *fakeSource {
	t.Helper()
	return &fakeSource{
		devices:   map[int]model.Device{1: {ID: 1, StoreID: 1, Active: true}},
		stores:    map[int]model.Store{1: {ID: 1, Timezone: "UTC", Active: true}},
		playlists: map[int]model.Playlist{99: playlistWithContent(99, "Default Loop")},
		defaultID: 99,
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	src := newFixture(t)
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 99, res.PlaylistID)
	assert.Equal(t, "default", res.Source)
	assert.Len(t, res.Items, 1)
}

func TestResolveScheduleBeatsDefault(t *testing.T) {
	src := newFixture(t)
	src.playlists[10] = playlistWithContent(10, "Morning Loop")
	src.schedules = []model.Schedule{
		{ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeAlways, Active: true},
	}
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 10, res.PlaylistID)
	assert.Equal(t, "schedule", res.Source)
}

func TestResolveHigherPriorityWins(t *testing.T) {
	src := newFixture(t)
	src.playlists[10] = playlistWithContent(10, "Low")
	src.playlists[11] = playlistWithContent(11, "High")
	src.schedules = []model.Schedule{
		{ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 5},
		{ID: 2, PlaylistID: 11, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 10},
	}
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 11, res.PlaylistID)
}

func TestResolveCampaignBeatsScheduleOnTie(t *testing.T) {
	src := newFixture(t)
	src.playlists[10] = playlistWithContent(10, "Scheduled")
	src.playlists[20] = playlistWithContent(20, "Promo")
	src.schedules = []model.Schedule{
		{ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 5},
	}
	src.campaigns = []model.Campaign{
		{
			ID: 1, PlaylistID: intPtr(20), Priority: 5,
			StartDate: *datePtr(t, "2026-03-01"), EndDate: *datePtr(t, "2026-03-31"),
			Status: model.CampaignStatusActive,
		},
	}
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 20, res.PlaylistID)
	assert.Equal(t, "campaign", res.Source)
}

func TestResolveNewestWinsFullTie(t *testing.T) {
	src := newFixture(t)
	src.playlists[10] = playlistWithContent(10, "Older")
	src.playlists[11] = playlistWithContent(11, "Newer")
	src.schedules = []model.Schedule{
		{ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 5},
		{ID: 2, PlaylistID: 11, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 5},
	}
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 11, res.PlaylistID, "higher source id breaks full ties")
}

func TestResolveOverrideBeatsEverything(t *testing.T) {
	src := newFixture(t)
	src.playlists[10] = playlistWithContent(10, "Scheduled")
	src.playlists[30] = playlistWithContent(30, "Pinned")
	src.schedules = []model.Schedule{
		{ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 1000},
	}
	device := src.devices[1]
	device.CurrentPlaylistID = intPtr(30)
	src.devices[1] = device
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 30, res.PlaylistID)
	assert.Equal(t, "override", res.Source)
}

func TestResolveFallsThroughUnplayableWinners(t *testing.T) {
	src := newFixture(t)

	inactive := playlistWithContent(10, "Inactive Winner")
	inactive.Active = false
	src.playlists[10] = inactive
	src.playlists[11] = model.Playlist{ID: 11, Name: "Empty Winner", Active: true}
	src.playlists[12] = playlistWithContent(12, "Playable")

	src.schedules = []model.Schedule{
		{ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 30},
		{ID: 2, PlaylistID: 11, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 20},
		{ID: 3, PlaylistID: 12, ScheduleType: model.ScheduleTypeAlways, Active: true, Priority: 10},
	}
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 12, res.PlaylistID, "inactive then empty winners fall through")
}

func TestResolveInactiveOverrideFallsThrough(t *testing.T) {
	src := newFixture(t)
	pinned := playlistWithContent(30, "Pinned But Inactive")
	pinned.Active = false
	src.playlists[30] = pinned

	device := src.devices[1]
	device.CurrentPlaylistID = intPtr(30)
	src.devices[1] = device
	resolver := playout.NewResolver(src)

	res, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	require.NoError(t, err)
	assert.Equal(t, 99, res.PlaylistID, "broken override degrades to the default chain")
}

func TestResolveNoPlayableContent(t *testing.T) {
	src := newFixture(t)
	src.playlists[99] = model.Playlist{ID: 99, Name: "Default Loop", Active: true}
	resolver := playout.NewResolver(src)

	_, err := resolver.Resolve(1, at(t, "2026-03-04 12:00"))
	assert.ErrorIs(t, err, playout.ErrNoPlayableContent)
}

func TestResolveUnknownDevice(t *testing.T) {
	resolver := playout.NewResolver(newFixture(t))
	_, err := resolver.Resolve(404, at(t, "2026-03-04 12:00"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, playout.ErrNoPlayableContent)
}

func TestResolveUsesStoreTimezone(t *testing.T) {
	src := newFixture(t)
	store := src.stores[1]
	store.Timezone = "America/New_York"
	src.stores[1] = store

	src.playlists[10] = playlistWithContent(10, "Business Hours")
	src.schedules = []model.Schedule{
		{
			ID: 1, PlaylistID: 10, ScheduleType: model.ScheduleTypeDaily, Active: true,
			StartTime: strPtr("09:00"), EndTime: strPtr("17:00"), Priority: 10,
		},
	}
	resolver := playout.NewResolver(src)

	// 15:00 UTC is 10:00 in New York: inside the window
	morningUTC := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
	res, err := resolver.Resolve(1, morningUTC)
	require.NoError(t, err)
	assert.Equal(t, 10, res.PlaylistID)

	// 03:00 UTC is 22:00 the previous evening in New York: outside
	nightUTC := time.Date(2026, 3, 4, 3, 0, 0, 0, time.UTC)
	res, err = resolver.Resolve(1, nightUTC)
	require.NoError(t, err)
	assert.Equal(t, 99, res.PlaylistID, "outside local business hours the default plays")
}
