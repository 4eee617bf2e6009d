package endpoints

import (
	"errors"
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

type PreviewController struct {
	store    db.Store
	resolver *playout.Resolver
}

func NewPreviewController(store db.Store) *PreviewController {
	return &PreviewController{store: store, resolver: playout.NewResolver(store)}
}

func PreviewModule(store db.Store) api.Module {
	ctl := NewPreviewController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/playout/preview", ctl.preview)
	})
}

// preview answers "what would this device be playing" for the given instant,
// defaulting to now. Accepts ?device_id= and an optional RFC 3339 ?at=.
func (p *PreviewController) preview(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	deviceID, err := strconv.Atoi(ctx.Query("device_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid device_id"}
	}

	at := time.Now()
	if raw := ctx.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid at, expected RFC 3339"}
		}
		at = parsed
	}

	if _, err := p.store.GetDeviceByID(deviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}

	resolution, err := p.resolver.Resolve(deviceID, at)
	if err != nil {
		if errors.Is(err, playout.ErrNoPlayableContent) {
			return packets.PlayoutResponse{
				State:      "standby",
				ResolvedAt: at.Format(time.RFC3339),
			}, nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve playout"}
	}
	return playoutResponse(resolution), nil
}
