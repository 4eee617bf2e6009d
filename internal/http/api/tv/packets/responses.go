package packets

// RESPONSES FOR /api/tv/pair

type RegisterPairingCodeResponse struct {
	PairingCode      string `json:"pairing_code"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

type PollPairingResponse struct {
	Token string `json:"token"`
}
