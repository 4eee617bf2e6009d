package db

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const deviceColumns = `id, device_code, name, store_id, current_playlist_id, api_token, paired, active, last_seen_at, created_at, updated_at`

// provisionalDeviceCode fills device_code until pairing binds the real
// hardware code. The column is unique, so the placeholder must be too.
func provisionalDeviceCode() string {
	return "prov-" + uuid.NewString()
}

func CreateDevice(name string, storeID int) (model.Device, error) {
	var d model.Device
	const q = `
	INSERT INTO devices (device_code, name, store_id, paired, active, created_at, updated_at)
	VALUES ($1, $2, $3, false, true, now(), now())
	RETURNING ` + deviceColumns + `;`
	if err := DB.Get(&d, q, provisionalDeviceCode(), name, storeID); err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreateDevice failed")
		return model.Device{}, err
	}
	return d, nil
}

func GetDeviceByID(id int) (model.Device, error) {
	var d model.Device
	err := DB.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("GetDeviceByID failed")
	}
	return d, err
}

func GetDeviceByToken(token string) (model.Device, error) {
	var d model.Device
	err := DB.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE api_token = $1;`, token)
	return d, err
}

func GetDeviceByCode(code string) (model.Device, error) {
	var d model.Device
	err := DB.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE device_code = $1;`, code)
	return d, err
}

func ListDevices() ([]model.Device, error) {
	var out []model.Device
	if err := DB.Select(&out, `SELECT `+deviceColumns+` FROM devices ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListDevices failed")
		return nil, err
	}
	return out, nil
}

// ListDevicesForStores returns devices belonging to any of the given stores;
// an empty id set means every device.
func ListDevicesForStores(storeIDs []int64) ([]model.Device, error) {
	if len(storeIDs) == 0 {
		return ListDevices()
	}
	q, args, err := queryIn(`SELECT `+deviceColumns+` FROM devices WHERE store_id IN (?) ORDER BY id;`, storeIDs)
	if err != nil {
		return nil, err
	}
	var out []model.Device
	if err := DB.Select(&out, q, args...); err != nil {
		log.Error().Err(err).Msg("ListDevicesForStores failed")
		return nil, err
	}
	return out, nil
}

func UpdateDevice(id int, name *string, storeID *int, active *bool) error {
	_, err := DB.Exec(`
		UPDATE devices
		SET name     = COALESCE($2, name),
		    store_id = COALESCE($3, store_id),
		    active   = COALESCE($4, active),
		    updated_at = now()
		WHERE id = $1;`,
		id, name, storeID, active,
	)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("UpdateDevice failed")
	}
	return err
}

func DeleteDevice(id int) error {
	_, err := DB.Exec(`DELETE FROM devices WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("DeleteDevice failed")
	}
	return err
}

// SetDeviceOverride pins (or with nil unpins) a playlist on a device.
func SetDeviceOverride(deviceID int, playlistID *int) error {
	_, err := DB.Exec(`
		UPDATE devices
		SET current_playlist_id = $2, updated_at = now()
		WHERE id = $1;`,
		deviceID, playlistID,
	)
	if err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("SetDeviceOverride failed")
	}
	return err
}

// PairDevice binds a hardware code to a device row and issues its API token.
func PairDevice(deviceID int, deviceCode, apiToken string) error {
	_, err := DB.Exec(`
		UPDATE devices
		SET device_code = $2, api_token = $3, paired = true, updated_at = now()
		WHERE id = $1;`,
		deviceID, deviceCode, apiToken,
	)
	if err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("PairDevice failed")
	}
	return err
}

func TouchDeviceLastSeen(deviceID int) error {
	_, err := DB.Exec(`UPDATE devices SET last_seen_at = now() WHERE id = $1;`, deviceID)
	if err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("TouchDeviceLastSeen failed")
	}
	return err
}
