package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded booking event.
type EventHandler func(context.Context, BookingEvent) error

// Consumer reads booking events for the notification worker. A payload
// that fails to decode is logged and skipped so one bad message cannot
// wedge the consumer group.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := dispatchEvent(ctx, msg.Value, handler); err != nil {
			return err
		}
	}
}

func dispatchEvent(ctx context.Context, payload []byte, handler EventHandler) error {
	var event BookingEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Printf("skip undecodable booking event: %v", err)
		return nil
	}
	return handler(ctx, event)
}
