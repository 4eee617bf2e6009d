package endpoints

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
	redisclient "github.com/Halcyon-Media-LLC/signet/internal/redis"
)

type DeviceController struct {
	store db.Store
}

func NewDeviceController(store db.Store) *DeviceController {
	return &DeviceController{store: store}
}

func DeviceModule(store db.Store) api.Module {
	ctl := NewDeviceController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/devices", ctl.listDevices)
		c.POST("/devices", ctl.createDevice)
		c.GET("/devices/:id", ctl.getDevice)
		c.PATCH("/devices/:id", ctl.updateDevice)
		c.DELETE("/devices/:id", ctl.deleteDevice)

		// pairing confirmation (claims the code the device registered)
		c.POST("/devices/:id/pair", ctl.confirmPairing)

		// manual playlist pin
		c.PUT("/devices/:id/override", ctl.setOverride)
	})
}

func (d *DeviceController) listDevices(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := d.store.ListDevices()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list devices"}
	}
	response := make([]packets.DeviceResponse, 0, len(list))
	for _, it := range list {
		response = append(response, deviceResponse(it))
	}
	return response, nil
}

func (d *DeviceController) createDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := d.store.GetStoreByID(request.StoreID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "store not found"}
	}
	created, err := d.store.CreateDevice(request.Name, request.StoreID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create device"}
	}
	return deviceResponse(created), nil
}

func (d *DeviceController) getDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := d.store.GetDeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	return deviceResponse(found), nil
}

func (d *DeviceController) updateDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := d.store.UpdateDevice(id, request.Name, request.StoreID, request.Active); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update device"}
	}
	updated, err := d.store.GetDeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	refreshDevice(updated)
	return deviceResponse(updated), nil
}

func (d *DeviceController) deleteDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := d.store.DeleteDevice(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete device"}
	}
	redisclient.Del(context.Background(), redisclient.DeviceSyncKey(id))
	return gin.H{"message": "deleted"}, nil
}

// confirmPairing claims the pairing code a device registered, binds the
// device's hardware code to this row, and issues the device API token.
func (d *DeviceController) confirmPairing(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.ConfirmPairRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	deviceCode := redisclient.Get(ctx, "pairing:"+request.PairingCode)
	if deviceCode == "" {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code expired or unknown"}
	}

	token := uuid.NewString()
	if err := d.store.PairDevice(id, deviceCode, token); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not pair device"}
	}

	// hand the token to the polling device, then burn the code
	redisclient.Set(ctx, "pairing:token:"+deviceCode, token, pairingTTL)
	redisclient.Del(ctx, "pairing:"+request.PairingCode)

	paired, err := d.store.GetDeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	return deviceResponse(paired), nil
}

// setOverride pins (or with null unpins) a playlist on a device, bypassing
// all scheduling until cleared.
func (d *DeviceController) setOverride(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.SetOverrideRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.PlaylistID != nil {
		if _, err := d.store.GetPlaylistByID(*request.PlaylistID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
		}
	}
	if err := d.store.SetDeviceOverride(id, request.PlaylistID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not set override"}
	}
	updated, err := d.store.GetDeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	refreshDevice(updated)
	return deviceResponse(updated), nil
}
