package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

type ScheduleController struct {
	store db.Store
}

func NewScheduleController(store db.Store) *ScheduleController {
	return &ScheduleController{store: store}
}

func ScheduleModule(store db.Store) api.Module {
	ctl := NewScheduleController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedules", ctl.listSchedules)
		c.POST("/schedules", ctl.createSchedule)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PATCH("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)
	})
}

func scheduleError(err error) *api.APIError {
	if errors.Is(err, playout.ErrInvalidScheduleConfig) {
		return &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return &api.APIError{Code: http.StatusInternalServerError, Message: "could not save schedule"}
}

func (s *ScheduleController) listSchedules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListSchedules()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list schedules"}
	}
	response := make([]packets.ScheduleResponse, 0, len(list))
	for _, it := range list {
		response = append(response, scheduleResponse(it))
	}
	return response, nil
}

func (s *ScheduleController) getSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := s.store.GetScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	return scheduleResponse(found), nil
}

func (s *ScheduleController) createSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := s.store.GetPlaylistByID(request.PlaylistID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
	}

	startDate, apiErr := parseDateField(request.StartDate, "start_date")
	if apiErr != nil {
		return nil, apiErr
	}
	endDate, apiErr := parseDateField(request.EndDate, "end_date")
	if apiErr != nil {
		return nil, apiErr
	}

	schedule := model.Schedule{
		Name:         request.Name,
		PlaylistID:   request.PlaylistID,
		ScheduleType: request.ScheduleType,
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		DaysOfWeek:   request.DaysOfWeek,
		CustomDates:  request.CustomDates,
		Priority:     request.Priority,
		Active:       true,
		StoreIDs:     request.StoreIDs,
	}
	if err := playout.ValidateSchedule(schedule); err != nil {
		return nil, scheduleError(err)
	}

	created, err := s.store.CreateSchedule(schedule, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule"}
	}
	if len(request.StoreIDs) > 0 {
		if err := s.store.SetScheduleStores(created.ID, request.StoreIDs); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not set schedule stores"}
		}
		created.StoreIDs = request.StoreIDs
	}
	refreshStoreDevices(s.store, created.StoreIDs)
	return scheduleResponse(created), nil
}

func (s *ScheduleController) updateSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	schedule, err := s.store.GetScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	previousScope := schedule.StoreIDs

	if request.Name != nil {
		schedule.Name = *request.Name
	}
	if request.PlaylistID != nil {
		if _, err := s.store.GetPlaylistByID(*request.PlaylistID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
		}
		schedule.PlaylistID = *request.PlaylistID
	}
	if request.ScheduleType != nil {
		schedule.ScheduleType = *request.ScheduleType
	}
	if request.StartDate != nil {
		startDate, apiErr := parseDateField(request.StartDate, "start_date")
		if apiErr != nil {
			return nil, apiErr
		}
		schedule.StartDate = startDate
	}
	if request.EndDate != nil {
		endDate, apiErr := parseDateField(request.EndDate, "end_date")
		if apiErr != nil {
			return nil, apiErr
		}
		schedule.EndDate = endDate
	}
	if request.StartTime != nil {
		schedule.StartTime = request.StartTime
	}
	if request.EndTime != nil {
		schedule.EndTime = request.EndTime
	}
	if request.DaysOfWeek != nil {
		schedule.DaysOfWeek = request.DaysOfWeek
	}
	if request.CustomDates != nil {
		schedule.CustomDates = request.CustomDates
	}
	if request.Priority != nil {
		schedule.Priority = *request.Priority
	}
	if request.Active != nil {
		schedule.Active = *request.Active
	}

	if err := playout.ValidateSchedule(schedule); err != nil {
		return nil, scheduleError(err)
	}
	if err := s.store.UpdateSchedule(schedule); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update schedule"}
	}
	if request.StoreIDs != nil {
		if err := s.store.SetScheduleStores(id, request.StoreIDs); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not set schedule stores"}
		}
	}

	updated, err := s.store.GetScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	// devices leaving the scope need a refresh too
	refreshStoreDevices(s.store, mergeScopes(previousScope, updated.StoreIDs))
	return scheduleResponse(updated), nil
}

func (s *ScheduleController) deleteSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := s.store.GetScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	if err := s.store.DeleteSchedule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete schedule"}
	}
	refreshStoreDevices(s.store, found.StoreIDs)
	return gin.H{"message": "deleted"}, nil
}
