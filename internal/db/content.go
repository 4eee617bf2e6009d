package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const contentColumns = `id, name, type, url, duration_seconds, active, created_by, created_at, updated_at`

func CreateContent(name, contentType, url string, durationSeconds, createdBy int) (model.Content, error) {
	var c model.Content
	const q = `
	INSERT INTO content (name, type, url, duration_seconds, active, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, true, $5, now(), now())
	RETURNING ` + contentColumns + `;`
	if err := DB.Get(&c, q, name, contentType, url, durationSeconds, createdBy); err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreateContent failed")
		return model.Content{}, err
	}
	return c, nil
}

func GetContentByID(id int) (model.Content, error) {
	var c model.Content
	err := DB.Get(&c, `SELECT `+contentColumns+` FROM content WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("GetContentByID failed")
	}
	return c, err
}

func ListContent() ([]model.Content, error) {
	var out []model.Content
	if err := DB.Select(&out, `SELECT `+contentColumns+` FROM content ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListContent failed")
		return nil, err
	}
	return out, nil
}

func UpdateContent(id int, name, url *string, durationSeconds *int, active *bool) error {
	_, err := DB.Exec(`
		UPDATE content
		SET name             = COALESCE($2, name),
		    url              = COALESCE($3, url),
		    duration_seconds = COALESCE($4, duration_seconds),
		    active           = COALESCE($5, active),
		    updated_at       = now()
		WHERE id = $1;`,
		id, name, url, durationSeconds, active,
	)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("UpdateContent failed")
	}
	return err
}

func DeleteContent(id int) error {
	_, err := DB.Exec(`DELETE FROM content WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("DeleteContent failed")
	}
	return err
}
