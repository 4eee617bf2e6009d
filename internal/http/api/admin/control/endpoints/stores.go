package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

type StoreController struct {
	store db.Store
}

func NewStoreController(store db.Store) *StoreController {
	return &StoreController{store: store}
}

func StoreModule(store db.Store) api.Module {
	ctl := NewStoreController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/stores", ctl.listStores)
		c.POST("/stores", ctl.createStore)
		c.GET("/stores/:id", ctl.getStore)
		c.PATCH("/stores/:id", ctl.updateStore)
		c.DELETE("/stores/:id", ctl.deleteStore)
	})
}

func (s *StoreController) listStores(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListStores()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list stores"}
	}
	response := make([]packets.StoreResponse, 0, len(list))
	for _, it := range list {
		response = append(response, storeResponse(it))
	}
	return response, nil
}

func (s *StoreController) createStore(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateStoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	tz := request.Timezone
	if tz == "" {
		tz = "UTC"
	}
	created, err := s.store.CreateStore(request.Code, request.Name, request.City, request.Region, tz)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "could not create store"}
	}
	return storeResponse(created), nil
}

func (s *StoreController) getStore(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := s.store.GetStoreByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "store not found"}
	}
	return storeResponse(found), nil
}

func (s *StoreController) updateStore(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateStoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := s.store.UpdateStore(id, request.Name, request.City, request.Region, request.Timezone, request.Active); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update store"}
	}
	updated, err := s.store.GetStoreByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "store not found"}
	}
	return storeResponse(updated), nil
}

func (s *StoreController) deleteStore(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := s.store.DeleteStore(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete store"}
	}
	return gin.H{"message": "deleted"}, nil
}
