package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api"
	authapi "github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Halcyon-Media-LLC/signet/internal/http/api/admin/control/endpoints"
	tvapi "github.com/Halcyon-Media-LLC/signet/internal/http/api/tv/endpoints"
	"github.com/Halcyon-Media-LLC/signet/internal/http/middleware"
	"github.com/Halcyon-Media-LLC/signet/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			middleware.DeviceTokenHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// control modules
		adminapi.StoreModule(store),
		adminapi.DeviceModule(store),
		adminapi.ContentModule(store, storageSystem),
		adminapi.PlaylistModule(store),
		adminapi.ScheduleModule(store),
		adminapi.CampaignModule(store),
		adminapi.PreviewModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	// device pairing is public: the device has no credentials yet
	tv := r.Group("/api/tv")
	tvapi.RegisterPairingRoutes(tv, store)

	// everything past pairing presents the issued device token
	tvAuthed := r.Group("/api/tv")
	tvAuthed.Use(middleware.DeviceAuthMiddleware(store))
	tvapi.RegisterSyncRoutes(tvAuthed, store)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
