package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

var validCampaignStatuses = map[model.CampaignStatus]bool{
	model.CampaignStatusPending:   true,
	model.CampaignStatusActive:    true,
	model.CampaignStatusCompleted: true,
	model.CampaignStatusCancelled: true,
}

type CampaignController struct {
	store db.Store
}

func NewCampaignController(store db.Store) *CampaignController {
	return &CampaignController{store: store}
}

func CampaignModule(store db.Store) api.Module {
	ctl := NewCampaignController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/campaigns", ctl.listCampaigns)
		c.POST("/campaigns", ctl.createCampaign)
		c.GET("/campaigns/:id", ctl.getCampaign)
		c.PATCH("/campaigns/:id", ctl.updateCampaign)
		c.DELETE("/campaigns/:id", ctl.deleteCampaign)

		c.POST("/campaigns/:id/cancel", ctl.cancelCampaign)
	})
}

// initialCampaignStatus mirrors what the sweep would decide on its next tick
// so a freshly created campaign is usable immediately.
func initialCampaignStatus(start, end time.Time, now time.Time) model.CampaignStatus {
	today := now.Format(dateLayout)
	switch {
	case end.Format(dateLayout) < today:
		return model.CampaignStatusCompleted
	case start.Format(dateLayout) <= today:
		return model.CampaignStatusActive
	default:
		return model.CampaignStatusPending
	}
}

func (cc *CampaignController) listCampaigns(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := cc.store.ListCampaigns()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list campaigns"}
	}
	response := make([]packets.CampaignResponse, 0, len(list))
	for _, it := range list {
		response = append(response, campaignResponse(it))
	}
	return response, nil
}

func (cc *CampaignController) getCampaign(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := cc.store.GetCampaignByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "campaign not found"}
	}
	return campaignResponse(found), nil
}

func (cc *CampaignController) createCampaign(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.PlaylistID != nil {
		if _, err := cc.store.GetPlaylistByID(*request.PlaylistID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
		}
	}

	startDate, apiErr := parseDateField(&request.StartDate, "start_date")
	if apiErr != nil {
		return nil, apiErr
	}
	endDate, apiErr := parseDateField(&request.EndDate, "end_date")
	if apiErr != nil {
		return nil, apiErr
	}

	campaign := model.Campaign{
		Name:       request.Name,
		PlaylistID: request.PlaylistID,
		StartDate:  *startDate,
		EndDate:    *endDate,
		Status:     initialCampaignStatus(*startDate, *endDate, time.Now()),
		Priority:   request.Priority,
		StoreIDs:   request.StoreIDs,
	}
	if err := playout.ValidateCampaign(campaign); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	created, err := cc.store.CreateCampaign(campaign, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create campaign"}
	}
	if len(request.StoreIDs) > 0 {
		if err := cc.store.SetCampaignStores(created.ID, request.StoreIDs); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not set campaign stores"}
		}
		created.StoreIDs = request.StoreIDs
	}
	refreshStoreDevices(cc.store, created.StoreIDs)
	return campaignResponse(created), nil
}

func (cc *CampaignController) updateCampaign(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	campaign, err := cc.store.GetCampaignByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "campaign not found"}
	}
	previousScope := campaign.StoreIDs

	if request.Name != nil {
		campaign.Name = *request.Name
	}
	if request.PlaylistID != nil {
		if _, err := cc.store.GetPlaylistByID(*request.PlaylistID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
		}
		campaign.PlaylistID = request.PlaylistID
	}
	if request.StartDate != nil {
		startDate, apiErr := parseDateField(request.StartDate, "start_date")
		if apiErr != nil {
			return nil, apiErr
		}
		campaign.StartDate = *startDate
	}
	if request.EndDate != nil {
		endDate, apiErr := parseDateField(request.EndDate, "end_date")
		if apiErr != nil {
			return nil, apiErr
		}
		campaign.EndDate = *endDate
	}
	if request.Status != nil {
		status := model.CampaignStatus(*request.Status)
		if !validCampaignStatuses[status] {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown campaign status"}
		}
		campaign.Status = status
	}
	if request.Priority != nil {
		campaign.Priority = *request.Priority
	}

	if err := playout.ValidateCampaign(campaign); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := cc.store.UpdateCampaign(campaign); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update campaign"}
	}
	if request.StoreIDs != nil {
		if err := cc.store.SetCampaignStores(id, request.StoreIDs); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not set campaign stores"}
		}
	}

	updated, err := cc.store.GetCampaignByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "campaign not found"}
	}
	refreshStoreDevices(cc.store, mergeScopes(previousScope, updated.StoreIDs))
	return campaignResponse(updated), nil
}

// cancelCampaign is the kill switch: cancelled is the one status the resolver
// honors unconditionally, so the change reaches devices on their next sync.
func (cc *CampaignController) cancelCampaign(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	campaign, err := cc.store.GetCampaignByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "campaign not found"}
	}
	campaign.Status = model.CampaignStatusCancelled
	if err := cc.store.UpdateCampaign(campaign); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not cancel campaign"}
	}
	refreshStoreDevices(cc.store, campaign.StoreIDs)
	return campaignResponse(campaign), nil
}

func (cc *CampaignController) deleteCampaign(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := cc.store.GetCampaignByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "campaign not found"}
	}
	if err := cc.store.DeleteCampaign(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete campaign"}
	}
	refreshStoreDevices(cc.store, found.StoreIDs)
	return gin.H{"message": "deleted"}, nil
}
