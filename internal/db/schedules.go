package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const scheduleColumns = `id, name, playlist_id, schedule_type, start_date, end_date, start_time, end_time, days_of_week, custom_dates, priority, active, created_by, created_at, updated_at`

func CreateSchedule(s model.Schedule, createdBy int) (model.Schedule, error) {
	var out model.Schedule
	const q = `
	INSERT INTO schedules
	  (name, playlist_id, schedule_type, start_date, end_date, start_time, end_time,
	   days_of_week, custom_dates, priority, active, created_by, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true, $11, now(), now())
	RETURNING ` + scheduleColumns + `;`
	if err := DB.Get(&out, q,
		s.Name, s.PlaylistID, s.ScheduleType, s.StartDate, s.EndDate,
		s.StartTime, s.EndTime, s.DaysOfWeek, s.CustomDates, s.Priority, createdBy,
	); err != nil {
		log.Error().Err(err).Str("name", s.Name).Msg("CreateSchedule failed")
		return model.Schedule{}, err
	}
	out.StoreIDs = nil
	return out, nil
}

func GetScheduleByID(id int) (model.Schedule, error) {
	var s model.Schedule
	if err := DB.Get(&s, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1;`, id); err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("GetScheduleByID failed")
		return model.Schedule{}, err
	}
	stores, err := listScheduleStores(id)
	if err != nil {
		return s, err
	}
	s.StoreIDs = stores
	return s, nil
}

func ListSchedules() ([]model.Schedule, error) {
	var out []model.Schedule
	if err := DB.Select(&out, `SELECT `+scheduleColumns+` FROM schedules ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListSchedules failed")
		return nil, err
	}
	for i := range out {
		stores, err := listScheduleStores(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].StoreIDs = stores
	}
	return out, nil
}

// ListSchedulesForStore returns active schedules that are either global
// (no scoping rows) or explicitly scoped to the store.
func ListSchedulesForStore(storeID int) ([]model.Schedule, error) {
	var out []model.Schedule
	const q = `
	SELECT ` + scheduleColumns + `
	  FROM schedules s
	 WHERE s.active = true
	   AND (
	     NOT EXISTS (SELECT 1 FROM schedule_stores ss WHERE ss.schedule_id = s.id)
	     OR EXISTS (SELECT 1 FROM schedule_stores ss WHERE ss.schedule_id = s.id AND ss.store_id = $1)
	   )
	 ORDER BY s.id;`
	if err := DB.Select(&out, q, storeID); err != nil {
		log.Error().Err(err).Int("store_id", storeID).Msg("ListSchedulesForStore failed")
		return nil, err
	}
	return out, nil
}

func UpdateSchedule(s model.Schedule) error {
	_, err := DB.Exec(`
		UPDATE schedules
		SET name          = $2,
		    playlist_id   = $3,
		    schedule_type = $4,
		    start_date    = $5,
		    end_date      = $6,
		    start_time    = $7,
		    end_time      = $8,
		    days_of_week  = $9,
		    custom_dates  = $10,
		    priority      = $11,
		    active        = $12,
		    updated_at    = now()
		WHERE id = $1;`,
		s.ID, s.Name, s.PlaylistID, s.ScheduleType, s.StartDate, s.EndDate,
		s.StartTime, s.EndTime, s.DaysOfWeek, s.CustomDates, s.Priority, s.Active,
	)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", s.ID).Msg("UpdateSchedule failed")
	}
	return err
}

func DeleteSchedule(id int) error {
	_, err := DB.Exec(`DELETE FROM schedules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("DeleteSchedule failed")
	}
	return err
}

// SetScheduleStores replaces a schedule's store scoping; an empty set makes
// the schedule global again.
func SetScheduleStores(scheduleID int, storeIDs []int64) error {
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

	if _, err = tx.Exec(`DELETE FROM schedule_stores WHERE schedule_id = $1;`, scheduleID); err != nil {
		return err
	}
	for _, storeID := range storeIDs {
		if _, err = tx.Exec(`
			INSERT INTO schedule_stores (schedule_id, store_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING;`, scheduleID, storeID); err != nil {
			return err
		}
	}
	return nil
}

func listScheduleStores(scheduleID int) ([]int64, error) {
	var out pq.Int64Array
	const q = `SELECT COALESCE(array_agg(store_id ORDER BY store_id), '{}') FROM schedule_stores WHERE schedule_id = $1;`
	if err := DB.Get(&out, q, scheduleID); err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("listScheduleStores failed")
		return nil, err
	}
	return out, nil
}
