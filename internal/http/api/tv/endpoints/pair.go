package endpoints

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/api/tv/packets"
	redisclient "github.com/Halcyon-Media-LLC/signet/internal/redis"
)

// pairing codes avoid lookalike characters (0/O, 1/I) so they survive being
// read off a TV screen
const pairingCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const pairingCodeLength = 6

const pairingTTL = 5 * time.Minute

type TvController struct {
	store db.Store
}

func NewTvController(store db.Store) *TvController {
	return &TvController{store: store}
}

func RegisterPairingRoutes(r gin.IRoutes, store db.Store) {
	ctl := NewTvController(store)

	r.POST("/pair/register", ctl.registerPairingCode)
	r.POST("/pair/poll", ctl.pollPairing)
}

func newPairingCode() (string, error) {
	code := make([]byte, pairingCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pairingCodeCharset))))
		if err != nil {
			return "", err
		}
		code[i] = pairingCodeCharset[n.Int64()]
	}
	return string(code), nil
}

// registerPairingCode hands an unpaired device a short code to show on
// screen. The code lives in Redis until an admin claims it or it expires.
func (t *TvController) registerPairingCode(c *gin.Context) {
	var request packets.RegisterPairingCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if device, err := t.store.GetDeviceByCode(request.DeviceCode); err == nil && device.Paired {
		log.Warn().Str("deviceCode", request.DeviceCode).Msg("[tv] device already paired")
		c.JSON(http.StatusConflict, gin.H{"error": "device is already paired"})
		return
	}

	code, err := newPairingCode()
	if err != nil {
		log.Error().Err(err).Msg("[tv] could not generate pairing code")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate pairing code"})
		return
	}

	redisclient.Set(c, "pairing:"+code, request.DeviceCode, pairingTTL)

	c.JSON(http.StatusOK, packets.RegisterPairingCodeResponse{
		PairingCode:      code,
		ExpiresInSeconds: int(pairingTTL.Seconds()),
	})
}

// pollPairing is called by the device while its code is on screen. Once an
// admin confirms the pairing, the issued API token shows up here exactly once.
func (t *TvController) pollPairing(c *gin.Context) {
	var request packets.PollPairingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := redisclient.Get(c, "pairing:token:"+request.DeviceCode)
	if token == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not paired yet"})
		return
	}
	redisclient.Del(c, "pairing:token:"+request.DeviceCode)

	c.JSON(http.StatusOK, packets.PollPairingResponse{Token: token})
}
