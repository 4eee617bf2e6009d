package packets

// REQUESTS FOR /api/tv/pair

type RegisterPairingCodeRequest struct {
	DeviceCode string `json:"device_code" binding:"required"`
}

type PollPairingRequest struct {
	DeviceCode string `json:"device_code" binding:"required"`
}
