// exposes a Store interface that is passed to API handlers and the playout
// engine so both stay mockable in tests
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// store functions
	CreateStore(code, name string, city, region *string, timezone string) (model.Store, error)
	GetStoreByID(id int) (model.Store, error)
	ListStores() ([]model.Store, error)
	UpdateStore(id int, name, city, region, timezone *string, active *bool) error
	DeleteStore(id int) error

	// device functions
	CreateDevice(name string, storeID int) (model.Device, error)
	GetDeviceByID(id int) (model.Device, error)
	GetDeviceByToken(token string) (model.Device, error)
	GetDeviceByCode(code string) (model.Device, error)
	ListDevices() ([]model.Device, error)
	ListDevicesForStores(storeIDs []int64) ([]model.Device, error)
	UpdateDevice(id int, name *string, storeID *int, active *bool) error
	DeleteDevice(id int) error
	SetDeviceOverride(deviceID int, playlistID *int) error
	PairDevice(deviceID int, deviceCode, apiToken string) error
	TouchDeviceLastSeen(deviceID int) error

	// content functions
	CreateContent(name, contentType, url string, durationSeconds, createdBy int) (model.Content, error)
	GetContentByID(id int) (model.Content, error)
	ListContent() ([]model.Content, error)
	UpdateContent(id int, name, url *string, durationSeconds *int, active *bool) error
	DeleteContent(id int) error

	// playlist functions
	CreatePlaylist(name string, storeID *int, priority int, isDefault bool, createdBy int) (model.Playlist, error)
	GetPlaylistByID(id int) (model.Playlist, error)
	ListPlaylists() ([]model.Playlist, error)
	UpdatePlaylist(id int, name *string, priority *int, isDefault, active *bool) error
	DeletePlaylist(id int) error
	AddItemToPlaylist(playlistID, contentID, position int, durationOverride *int, transitionType *string) (model.PlaylistItem, error)
	UpdatePlaylistItem(itemID int, position, durationOverride *int, transitionType *string) error
	RemovePlaylistItem(itemID int) error
	ReorderPlaylistItems(playlistID int, itemIDs []int) error
	GetDefaultPlaylistForStore(storeID int) (model.Playlist, error)

	// schedule functions
	CreateSchedule(s model.Schedule, createdBy int) (model.Schedule, error)
	GetScheduleByID(id int) (model.Schedule, error)
	ListSchedules() ([]model.Schedule, error)
	ListSchedulesForStore(storeID int) ([]model.Schedule, error)
	UpdateSchedule(s model.Schedule) error
	DeleteSchedule(id int) error
	SetScheduleStores(scheduleID int, storeIDs []int64) error

	// campaign functions
	CreateCampaign(c model.Campaign, createdBy int) (model.Campaign, error)
	GetCampaignByID(id int) (model.Campaign, error)
	ListCampaigns() ([]model.Campaign, error)
	ListCampaignsForStore(storeID int) ([]model.Campaign, error)
	UpdateCampaign(c model.Campaign) error
	DeleteCampaign(id int) error
	SetCampaignStores(campaignID int, storeIDs []int64) error
	MarkCampaignsActive(today string) (int64, error)
	MarkCampaignsCompleted(today string) (int64, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) { return GetUserByEmail(email) }
func (s *pgStore) GetUserByID(id int) (*model.User, error)          { return GetUserByID(id) }
func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (s *pgStore) CreateStore(code, name string, city, region *string, timezone string) (model.Store, error) {
	return CreateStore(code, name, city, region, timezone)
}
func (s *pgStore) GetStoreByID(id int) (model.Store, error) { return GetStoreByID(id) }
func (s *pgStore) ListStores() ([]model.Store, error)       { return ListStores() }
func (s *pgStore) UpdateStore(id int, name, city, region, timezone *string, active *bool) error {
	return UpdateStore(id, name, city, region, timezone, active)
}
func (s *pgStore) DeleteStore(id int) error { return DeleteStore(id) }

func (s *pgStore) CreateDevice(name string, storeID int) (model.Device, error) {
	return CreateDevice(name, storeID)
}
func (s *pgStore) GetDeviceByID(id int) (model.Device, error)          { return GetDeviceByID(id) }
func (s *pgStore) GetDeviceByToken(token string) (model.Device, error) { return GetDeviceByToken(token) }
func (s *pgStore) GetDeviceByCode(code string) (model.Device, error)   { return GetDeviceByCode(code) }
func (s *pgStore) ListDevices() ([]model.Device, error)                { return ListDevices() }
func (s *pgStore) ListDevicesForStores(storeIDs []int64) ([]model.Device, error) {
	return ListDevicesForStores(storeIDs)
}
func (s *pgStore) UpdateDevice(id int, name *string, storeID *int, active *bool) error {
	return UpdateDevice(id, name, storeID, active)
}
func (s *pgStore) DeleteDevice(id int) error { return DeleteDevice(id) }
func (s *pgStore) SetDeviceOverride(deviceID int, playlistID *int) error {
	return SetDeviceOverride(deviceID, playlistID)
}
func (s *pgStore) PairDevice(deviceID int, deviceCode, apiToken string) error {
	return PairDevice(deviceID, deviceCode, apiToken)
}
func (s *pgStore) TouchDeviceLastSeen(deviceID int) error { return TouchDeviceLastSeen(deviceID) }

func (s *pgStore) CreateContent(name, contentType, url string, durationSeconds, createdBy int) (model.Content, error) {
	return CreateContent(name, contentType, url, durationSeconds, createdBy)
}
func (s *pgStore) GetContentByID(id int) (model.Content, error) { return GetContentByID(id) }
func (s *pgStore) ListContent() ([]model.Content, error)        { return ListContent() }
func (s *pgStore) UpdateContent(id int, name, url *string, durationSeconds *int, active *bool) error {
	return UpdateContent(id, name, url, durationSeconds, active)
}
func (s *pgStore) DeleteContent(id int) error { return DeleteContent(id) }

func (s *pgStore) CreatePlaylist(name string, storeID *int, priority int, isDefault bool, createdBy int) (model.Playlist, error) {
	return CreatePlaylist(name, storeID, priority, isDefault, createdBy)
}
func (s *pgStore) GetPlaylistByID(id int) (model.Playlist, error) { return GetPlaylistByID(id) }
func (s *pgStore) ListPlaylists() ([]model.Playlist, error)       { return ListPlaylists() }
func (s *pgStore) UpdatePlaylist(id int, name *string, priority *int, isDefault, active *bool) error {
	return UpdatePlaylist(id, name, priority, isDefault, active)
}
func (s *pgStore) DeletePlaylist(id int) error { return DeletePlaylist(id) }
func (s *pgStore) AddItemToPlaylist(playlistID, contentID, position int, durationOverride *int, transitionType *string) (model.PlaylistItem, error) {
	return AddItemToPlaylist(playlistID, contentID, position, durationOverride, transitionType)
}
func (s *pgStore) UpdatePlaylistItem(itemID int, position, durationOverride *int, transitionType *string) error {
	return UpdatePlaylistItem(itemID, position, durationOverride, transitionType)
}
func (s *pgStore) RemovePlaylistItem(itemID int) error { return RemovePlaylistItem(itemID) }
func (s *pgStore) ReorderPlaylistItems(playlistID int, itemIDs []int) error {
	return ReorderPlaylistItems(playlistID, itemIDs)
}
func (s *pgStore) GetDefaultPlaylistForStore(storeID int) (model.Playlist, error) {
	return GetDefaultPlaylistForStore(storeID)
}

func (s *pgStore) CreateSchedule(sc model.Schedule, createdBy int) (model.Schedule, error) {
	return CreateSchedule(sc, createdBy)
}
func (s *pgStore) GetScheduleByID(id int) (model.Schedule, error) { return GetScheduleByID(id) }
func (s *pgStore) ListSchedules() ([]model.Schedule, error)       { return ListSchedules() }
func (s *pgStore) ListSchedulesForStore(storeID int) ([]model.Schedule, error) {
	return ListSchedulesForStore(storeID)
}
func (s *pgStore) UpdateSchedule(sc model.Schedule) error { return UpdateSchedule(sc) }
func (s *pgStore) DeleteSchedule(id int) error            { return DeleteSchedule(id) }
func (s *pgStore) SetScheduleStores(scheduleID int, storeIDs []int64) error {
	return SetScheduleStores(scheduleID, storeIDs)
}

func (s *pgStore) CreateCampaign(c model.Campaign, createdBy int) (model.Campaign, error) {
	return CreateCampaign(c, createdBy)
}
func (s *pgStore) GetCampaignByID(id int) (model.Campaign, error) { return GetCampaignByID(id) }
func (s *pgStore) ListCampaigns() ([]model.Campaign, error)       { return ListCampaigns() }
func (s *pgStore) ListCampaignsForStore(storeID int) ([]model.Campaign, error) {
	return ListCampaignsForStore(storeID)
}
func (s *pgStore) UpdateCampaign(c model.Campaign) error { return UpdateCampaign(c) }
func (s *pgStore) DeleteCampaign(id int) error           { return DeleteCampaign(id) }
func (s *pgStore) SetCampaignStores(campaignID int, storeIDs []int64) error {
	return SetCampaignStores(campaignID, storeIDs)
}
func (s *pgStore) MarkCampaignsActive(today string) (int64, error) {
	return MarkCampaignsActive(today)
}
func (s *pgStore) MarkCampaignsCompleted(today string) (int64, error) {
	return MarkCampaignsCompleted(today)
}
