package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/publisher"
)

var _ publisher.LivePublisher = (*LivePublisher)(nil)

const (
	exchangeName = "fleet.live"
	queueName    = "live_updates"
)

// LivePublisher fans out every accepted report so live-tracking consumers do
// not need to poll the HTTP API.
type LivePublisher struct {
	ch *amqp.Channel
}

func NewLivePublisher(conn *amqp.Connection) (*LivePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &LivePublisher{ch: ch}, nil
}

type updateMessage struct {
	BusID      string  `json:"bus_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CapturedAt int64   `json:"captured_at"`
}

func (p *LivePublisher) PublishUpdate(ctx context.Context, update *domain.LiveUpdate) error {
	msg := updateMessage{
		BusID:      update.BusID,
		Latitude:   update.Coordinate.Lat,
		Longitude:  update.Coordinate.Lon,
		CapturedAt: update.CapturedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
