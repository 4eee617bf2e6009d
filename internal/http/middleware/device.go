package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
)

// DeviceTokenHeader carries the opaque token issued to a device at pairing.
const DeviceTokenHeader = "X-Device-Token"

// DeviceAuthMiddleware authenticates a paired device by its issued token and
// sets "currentDevice" in context. Device identity is trusted downstream;
// playout resolution never re-checks it.
func DeviceAuthMiddleware(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(DeviceTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing device token"})
			return
		}

		device, err := store.GetDeviceByToken(token)
		if err != nil {
			log.Warn().Err(err).Msg("device token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized device"})
			return
		}
		if !device.Paired {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "device not paired"})
			return
		}

		c.Set("currentDevice", device)
		c.Next()
	}
}
