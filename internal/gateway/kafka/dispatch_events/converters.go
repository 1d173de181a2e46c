package dispatch_events

import (
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/IBM/sarama"
)

const headerEventType = "event_type"

func toMessage(topic string, eventID string, event entities.DispatchEvent) (*sarama.ProducerMessage, error) {
	body := dispatchEventMessage{
		EventID:    eventID,
		OrderID:    event.OrderID,
		Type:       event.Type.String(),
		RiderID:    event.RiderID,
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if event.TimeoutAt != nil {
		timeoutAt := event.TimeoutAt.UTC().Format(time.RFC3339Nano)
		body.TimeoutAt = &timeoutAt
	}

	value, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal dispatch event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(event.Type.String())},
		},
	}, nil
}
