package subscriber

import (
	"context"
	"encoding/json"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

const topicPattern = "/fleet/bus/+/location"

type trackingService interface {
	IngestTelemetry(ctx context.Context, busID, coordinates string) (*domain.Report, error)
}

type telemetryMessage struct {
	BusID       string `json:"bus_id"`
	Coordinates string `json:"coordinates"`
}

// TelemetrySubscriber feeds coordinates-only reports from the MQTT broker
// into the same ingestion pipeline as HTTP uploads. Invalid messages are
// logged and dropped; there is no client to answer.
type TelemetrySubscriber struct {
	client   mqtt.Client
	tracking trackingService
}

func NewTelemetrySubscriber(client mqtt.Client, tracking trackingService) *TelemetrySubscriber {
	return &TelemetrySubscriber{client: client, tracking: tracking}
}

func (s *TelemetrySubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *TelemetrySubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw telemetryMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithError(err).Warn("invalid telemetry message")
		return
	}

	report, err := s.tracking.IngestTelemetry(context.Background(), raw.BusID, raw.Coordinates)
	if err != nil {
		if domain.IsClientError(err) {
			log.Warnf("telemetry from bus %q dropped: %v", raw.BusID, err)
		} else {
			log.WithError(err).Errorf("telemetry from bus %q not persisted", raw.BusID)
		}
		return
	}

	log.Debugf("telemetry stored for bus %s at %d", raw.BusID, report.CapturedAt)
}
