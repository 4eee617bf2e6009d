package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const playlistColumns = `id, name, store_id, priority, is_default, active, created_by, created_at, updated_at`

func CreatePlaylist(name string, storeID *int, priority int, isDefault bool, createdBy int) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	INSERT INTO playlists (name, store_id, priority, is_default, active, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, true, $5, now(), now())
	RETURNING ` + playlistColumns + `;`
	if err := DB.Get(&p, q, name, storeID, priority, isDefault, createdBy); err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreatePlaylist failed")
		return model.Playlist{}, err
	}
	return p, nil
}

// GetPlaylistByID loads a playlist with its items and their content rows,
// ordered by position.
func GetPlaylistByID(id int) (model.Playlist, error) {
	var p model.Playlist
	if err := DB.Get(&p, `SELECT `+playlistColumns+` FROM playlists WHERE id = $1;`, id); err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("GetPlaylistByID failed")
		return model.Playlist{}, err
	}
	items, err := ListPlaylistItems(id)
	if err != nil {
		return p, err
	}
	p.Items = items
	return p, nil
}

func ListPlaylists() ([]model.Playlist, error) {
	var out []model.Playlist
	if err := DB.Select(&out, `SELECT `+playlistColumns+` FROM playlists ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListPlaylists failed")
		return nil, err
	}
	for i := range out {
		items, err := ListPlaylistItems(out[i].ID)
		if err != nil {
			log.Error().Err(err).Int("playlist_id", out[i].ID).Msg("ListPlaylists: failed to load items")
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func UpdatePlaylist(id int, name *string, priority *int, isDefault, active *bool) error {
	_, err := DB.Exec(`
		UPDATE playlists
		SET name       = COALESCE($2, name),
		    priority   = COALESCE($3, priority),
		    is_default = COALESCE($4, is_default),
		    active     = COALESCE($5, active),
		    updated_at = now()
		WHERE id = $1;`,
		id, name, priority, isDefault, active,
	)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("UpdatePlaylist failed")
	}
	return err
}

func DeletePlaylist(id int) error {
	_, err := DB.Exec(`DELETE FROM playlists WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("DeletePlaylist failed")
	}
	return err
}

// playlistItemRow flattens the item/content join for sqlx scanning.
type playlistItemRow struct {
	ID               int     `db:"id"`
	PlaylistID       int     `db:"playlist_id"`
	ContentID        int     `db:"content_id"`
	Position         int     `db:"position"`
	DurationOverride *int    `db:"duration_override"`
	TransitionType   *string `db:"transition_type"`
	ContentName      string  `db:"content_name"`
	ContentType      string  `db:"content_type"`
	ContentURL       string  `db:"content_url"`
	ContentDuration  int     `db:"content_duration"`
	ContentActive    bool    `db:"content_active"`
}

func ListPlaylistItems(playlistID int) ([]model.PlaylistItem, error) {
	var rows []playlistItemRow
	const q = `
	SELECT
	  pi.id, pi.playlist_id, pi.content_id, pi.position,
	  pi.duration_override, pi.transition_type,
	  c.name             AS content_name,
	  c.type             AS content_type,
	  c.url              AS content_url,
	  c.duration_seconds AS content_duration,
	  c.active           AS content_active
	FROM playlist_items pi
	JOIN content c ON c.id = pi.content_id
	WHERE pi.playlist_id = $1
	ORDER BY pi.position;`
	if err := DB.Select(&rows, q, playlistID); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("ListPlaylistItems failed")
		return nil, err
	}
	out := make([]model.PlaylistItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.PlaylistItem{
			ID:               r.ID,
			PlaylistID:       r.PlaylistID,
			ContentID:        r.ContentID,
			Position:         r.Position,
			DurationOverride: r.DurationOverride,
			TransitionType:   r.TransitionType,
			Content: &model.Content{
				ID:              r.ContentID,
				Name:            r.ContentName,
				Type:            r.ContentType,
				URL:             r.ContentURL,
				DurationSeconds: r.ContentDuration,
				Active:          r.ContentActive,
			},
		})
	}
	return out, nil
}

func AddItemToPlaylist(playlistID, contentID, position int, durationOverride *int, transitionType *string) (model.PlaylistItem, error) {
	var it model.PlaylistItem
	const q = `
	INSERT INTO playlist_items
	  (playlist_id, content_id, position, duration_override, transition_type, created_at)
	VALUES
	  ($1, $2, $3, $4, $5, now())
	RETURNING id, playlist_id, content_id, position, duration_override, transition_type, created_at;`
	if err := DB.Get(&it, q, playlistID, contentID, position, durationOverride, transitionType); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("AddItemToPlaylist failed")
		return model.PlaylistItem{}, err
	}
	return it, nil
}

func UpdatePlaylistItem(itemID int, position, durationOverride *int, transitionType *string) error {
	_, err := DB.Exec(`
		UPDATE playlist_items
		SET position          = COALESCE($2, position),
		    duration_override = COALESCE($3, duration_override),
		    transition_type   = COALESCE($4, transition_type)
		WHERE id = $1;`,
		itemID, position, durationOverride, transitionType,
	)
	if err != nil {
		log.Error().Err(err).Int("item_id", itemID).Msg("UpdatePlaylistItem failed")
	}
	return err
}

func RemovePlaylistItem(itemID int) error {
	_, err := DB.Exec(`DELETE FROM playlist_items WHERE id = $1;`, itemID)
	if err != nil {
		log.Error().Err(err).Int("item_id", itemID).Msg("RemovePlaylistItem failed")
	}
	return err
}

// ReorderPlaylistItems rewrites positions to match the given item order.
// Positions are first shifted past the current maximum so the per-playlist
// uniqueness constraint never trips mid-transaction.
func ReorderPlaylistItems(playlistID int, itemIDs []int) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	count := len(itemIDs)
	if _, err = tx.Exec(`
		UPDATE playlist_items
		   SET position = position + $1
		 WHERE playlist_id = $2;`, count, playlistID); err != nil {
		return err
	}

	for idx, itemID := range itemIDs {
		if _, err = tx.Exec(`
			UPDATE playlist_items
			   SET position = $1
			 WHERE id = $2
			   AND playlist_id = $3;`, idx+1, itemID, playlistID); err != nil {
			return err
		}
	}
	return nil
}

// GetDefaultPlaylistForStore returns the store's default playlist, falling
// back to the global default (store_id IS NULL) when the store has none.
func GetDefaultPlaylistForStore(storeID int) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	SELECT ` + playlistColumns + `
	  FROM playlists
	 WHERE is_default = true
	   AND active = true
	   AND (store_id = $1 OR store_id IS NULL)
	 ORDER BY store_id NULLS LAST, id DESC
	 LIMIT 1;`
	if err := DB.Get(&p, q, storeID); err != nil {
		return model.Playlist{}, err
	}
	items, err := ListPlaylistItems(p.ID)
	if err != nil {
		return p, err
	}
	p.Items = items
	return p, nil
}
