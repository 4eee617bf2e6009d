package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const storeColumns = `id, code, name, city, region, timezone, active, created_at, updated_at`

func CreateStore(code, name string, city, region *string, timezone string) (model.Store, error) {
	var s model.Store
	const q = `
	INSERT INTO stores (code, name, city, region, timezone, active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, true, now(), now())
	RETURNING ` + storeColumns + `;`
	if err := DB.Get(&s, q, code, name, city, region, timezone); err != nil {
		log.Error().Err(err).Str("code", code).Msg("CreateStore failed")
		return model.Store{}, err
	}
	return s, nil
}

func GetStoreByID(id int) (model.Store, error) {
	var s model.Store
	err := DB.Get(&s, `SELECT `+storeColumns+` FROM stores WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("store_id", id).Msg("GetStoreByID failed")
	}
	return s, err
}

func ListStores() ([]model.Store, error) {
	var out []model.Store
	if err := DB.Select(&out, `SELECT `+storeColumns+` FROM stores ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListStores failed")
		return nil, err
	}
	return out, nil
}

func UpdateStore(id int, name, city, region, timezone *string, active *bool) error {
	_, err := DB.Exec(`
		UPDATE stores
		SET name     = COALESCE($2, name),
		    city     = COALESCE($3, city),
		    region   = COALESCE($4, region),
		    timezone = COALESCE($5, timezone),
		    active   = COALESCE($6, active),
		    updated_at = now()
		WHERE id = $1;`,
		id, name, city, region, timezone, active,
	)
	if err != nil {
		log.Error().Err(err).Int("store_id", id).Msg("UpdateStore failed")
	}
	return err
}

func DeleteStore(id int) error {
	_, err := DB.Exec(`DELETE FROM stores WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("store_id", id).Msg("DeleteStore failed")
	}
	return err
}
