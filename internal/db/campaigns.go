package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const campaignColumns = `id, name, playlist_id, start_date, end_date, status, priority, created_by, created_at, updated_at`

func CreateCampaign(c model.Campaign, createdBy int) (model.Campaign, error) {
	status := c.Status
	if status == "" {
		status = model.CampaignStatusPending
	}
	var out model.Campaign
	const q = `
	INSERT INTO campaigns
	  (name, playlist_id, start_date, end_date, status, priority, created_by, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING ` + campaignColumns + `;`
	if err := DB.Get(&out, q, c.Name, c.PlaylistID, c.StartDate, c.EndDate, string(status), c.Priority, createdBy); err != nil {
		log.Error().Err(err).Str("name", c.Name).Msg("CreateCampaign failed")
		return model.Campaign{}, err
	}
	return out, nil
}

func GetCampaignByID(id int) (model.Campaign, error) {
	var c model.Campaign
	if err := DB.Get(&c, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1;`, id); err != nil {
		log.Error().Err(err).Int("campaign_id", id).Msg("GetCampaignByID failed")
		return model.Campaign{}, err
	}
	stores, err := listCampaignStores(id)
	if err != nil {
		return c, err
	}
	c.StoreIDs = stores
	return c, nil
}

func ListCampaigns() ([]model.Campaign, error) {
	var out []model.Campaign
	if err := DB.Select(&out, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListCampaigns failed")
		return nil, err
	}
	for i := range out {
		stores, err := listCampaignStores(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].StoreIDs = stores
	}
	return out, nil
}

// ListCampaignsForStore returns campaigns that either target everywhere
// (no targeting rows) or explicitly include the store. Status filtering is
// the matcher's job, not SQL's.
func ListCampaignsForStore(storeID int) ([]model.Campaign, error) {
	var out []model.Campaign
	const q = `
	SELECT ` + campaignColumns + `
	  FROM campaigns c
	 WHERE NOT EXISTS (SELECT 1 FROM campaign_stores cs WHERE cs.campaign_id = c.id)
	    OR EXISTS (SELECT 1 FROM campaign_stores cs WHERE cs.campaign_id = c.id AND cs.store_id = $1)
	 ORDER BY c.id;`
	if err := DB.Select(&out, q, storeID); err != nil {
		log.Error().Err(err).Int("store_id", storeID).Msg("ListCampaignsForStore failed")
		return nil, err
	}
	for i := range out {
		stores, err := listCampaignStores(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].StoreIDs = stores
	}
	return out, nil
}

func UpdateCampaign(c model.Campaign) error {
	_, err := DB.Exec(`
		UPDATE campaigns
		SET name        = $2,
		    playlist_id = $3,
		    start_date  = $4,
		    end_date    = $5,
		    status      = $6,
		    priority    = $7,
		    updated_at  = now()
		WHERE id = $1;`,
		c.ID, c.Name, c.PlaylistID, c.StartDate, c.EndDate, c.Status, c.Priority,
	)
	if err != nil {
		log.Error().Err(err).Int("campaign_id", c.ID).Msg("UpdateCampaign failed")
	}
	return err
}

func DeleteCampaign(id int) error {
	_, err := DB.Exec(`DELETE FROM campaigns WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("campaign_id", id).Msg("DeleteCampaign failed")
	}
	return err
}

// SetCampaignStores replaces a campaign's store targeting; an empty set
// means the campaign targets every store.
func SetCampaignStores(campaignID int, storeIDs []int64) error {
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

	if _, err = tx.Exec(`DELETE FROM campaign_stores WHERE campaign_id = $1;`, campaignID); err != nil {
		return err
	}
	for _, storeID := range storeIDs {
		if _, err = tx.Exec(`
			INSERT INTO campaign_stores (campaign_id, store_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING;`, campaignID, storeID); err != nil {
			return err
		}
	}
	return nil
}

func listCampaignStores(campaignID int) ([]int64, error) {
	var out pq.Int64Array
	const q = `SELECT COALESCE(array_agg(store_id ORDER BY store_id), '{}') FROM campaign_stores WHERE campaign_id = $1;`
	if err := DB.Get(&out, q, campaignID); err != nil {
		log.Error().Err(err).Int("campaign_id", campaignID).Msg("listCampaignStores failed")
		return nil, err
	}
	return out, nil
}

// MarkCampaignsActive flips pending campaigns whose window covers today.
// Re-running it is a no-op, which keeps concurrent sweeps safe.
func MarkCampaignsActive(today string) (int64, error) {
	res, err := DB.Exec(`
		UPDATE campaigns
		SET status = 'active', updated_at = now()
		WHERE status = 'pending'
		  AND start_date <= $1::date
		  AND end_date   >= $1::date;`, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkCampaignsCompleted flips campaigns whose window has closed, leaving
// cancelled ones alone.
func MarkCampaignsCompleted(today string) (int64, error) {
	res, err := DB.Exec(`
		UPDATE campaigns
		SET status = 'completed', updated_at = now()
		WHERE status NOT IN ('completed', 'cancelled')
		  AND end_date < $1::date;`, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
