package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/packets"
	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/storage"
)

var validContentTypes = map[string]bool{
	model.ContentTypeVideo:        true,
	model.ContentTypeImage:        true,
	model.ContentTypeSlider:       true,
	model.ContentTypeTicker:       true,
	model.ContentTypeAnnouncement: true,
}

type ContentController struct {
	store   db.Store
	storage storage.Storage
}

func NewContentController(store db.Store, storage storage.Storage) *ContentController {
	return &ContentController{store: store, storage: storage}
}

func ContentModule(store db.Store, storage storage.Storage) api.Module {
	ctl := NewContentController(store, storage)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/content", ctl.listContent)
		c.POST("/content", ctl.createContent)
		c.GET("/content/:id", ctl.getContent)
		c.PATCH("/content/:id", ctl.updateContent)
		c.DELETE("/content/:id", ctl.deleteContent)
	})
}

func (c *ContentController) listContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := c.store.ListContent()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list content"}
	}
	response := make([]packets.ContentResponse, 0, len(list))
	for _, it := range list {
		response = append(response, contentResponse(it))
	}
	return response, nil
}

func (c *ContentController) getContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}
	return contentResponse(found), nil
}

// createContent accepts a multipart form: file uploads go through the storage
// backend, text-only types (ticker, announcement) carry their payload in the
// "body" field instead of a file.
func (c *ContentController) createContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	name := ctx.PostForm("name")
	typeVal := ctx.PostForm("type")
	if name == "" || typeVal == "" {
		log.Warn().Msg("[content] createContent: missing required form fields")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing required form fields"}
	}
	if !validContentTypes[typeVal] {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown content type"}
	}

	duration := 0
	if raw := ctx.PostForm("duration_seconds"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Error().Str("duration_seconds", raw).Msg("[content] non-integer duration")
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid duration_seconds"}
		}
		duration = parsed
	}

	var url string
	switch typeVal {
	case model.ContentTypeTicker, model.ContentTypeAnnouncement:
		url = ctx.PostForm("body")
		if url == "" {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing body for text content"}
		}
	default:
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			log.Error().Err(err).Msg("[content] createContent: missing file")
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file"}
		}
		url, err = c.storage.SaveFile(fileHeader, fileHeader.Filename)
		if err != nil {
			log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("[content] file save failed")
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save file"}
		}
	}

	created, err := c.store.CreateContent(name, typeVal, url, duration, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create content"}
	}
	return contentResponse(created), nil
}

func (c *ContentController) updateContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := c.store.UpdateContent(id, request.Name, request.URL, request.DurationSeconds, request.Active); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update content"}
	}
	updated, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}
	return contentResponse(updated), nil
}

func (c *ContentController) deleteContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := c.store.DeleteContent(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete content"}
	}
	return gin.H{"message": "deleted"}, nil
}
