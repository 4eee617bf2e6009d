package middleware

import (
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

var (
	mqttClient mqtt.Client
	mqttMutex  sync.RWMutex
)

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// InitMQTT connects the shared broker client used to nudge devices. The
// broker is optional infrastructure: when it is down devices still converge
// on their normal poll interval, so failure here is non-fatal.
func InitMQTT(brokerURL, clientID string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	mqttMutex.Lock()
	mqttClient = client
	mqttMutex.Unlock()
	return nil
}

// deviceRefreshTopic is where a device listens for "re-sync now" nudges.
func deviceRefreshTopic(deviceCode string) string {
	return fmt.Sprintf("signet/device/%s/refresh", deviceCode)
}

// PublishRefresh tells one device to sync immediately instead of waiting for
// its next poll. Best-effort: a missing broker just means a slower refresh.
func PublishRefresh(deviceCode string) {
	mqttMutex.RLock()
	client := mqttClient
	mqttMutex.RUnlock()
	if client == nil || deviceCode == "" {
		return
	}

	token := client.Publish(deviceRefreshTopic(deviceCode), 1, false, []byte("refresh"))
	token.Wait()
	if err := token.Error(); err != nil {
		log.Error().Err(err).Str("device_code", deviceCode).Msg("failed to publish refresh")
		return
	}
	log.Debug().Str("device_code", deviceCode).Msg("published playout refresh")
}

// CleanupMQTT disconnects the broker client on shutdown.
func CleanupMQTT() {
	mqttMutex.Lock()
	defer mqttMutex.Unlock()
	if mqttClient != nil {
		mqttClient.Disconnect(250)
		mqttClient = nil
		log.Info().Msg("MQTT client disconnected")
	}
}
