package dispatch_events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// DispatchEventsGateway публикует события переходов в Kafka, ключ сообщения
// id заказа, поэтому события одного заказа идут в одну партицию по порядку.
type DispatchEventsGateway struct {
	producer producer
	retrier  retrier
	topic    string
	newID    func() string
}

func New(producer producer, topic string) *DispatchEventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &DispatchEventsGateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
		newID:    uuid.NewString,
	}
}

func (g *DispatchEventsGateway) Publish(ctx context.Context, event entities.DispatchEvent) error {
	message, err := toMessage(g.topic, g.newID(), event)
	if err != nil {
		return err
	}

	err = g.executeWithMetrics(ctx, event.Type.String(), func(context.Context) error {
		_, _, err := g.producer.SendMessage(message)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway dispatch events, publish %s for order %s: %w", event.Type, event.OrderID, err)
	}

	return nil
}

// isRetryableError временные ошибки брокера, после которых есть смысл
// повторить отправку. Остальное (слишком большое сообщение, нет топика) сразу наверх.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	for _, retryable := range []error{
		sarama.ErrOutOfBrokers,
		sarama.ErrNotConnected,
		sarama.ErrLeaderNotAvailable,
		sarama.ErrNotLeaderForPartition,
		sarama.ErrRequestTimedOut,
		sarama.ErrNotEnoughReplicas,
		sarama.ErrNotEnoughReplicasAfterAppend,
	} {
		if errors.Is(err, retryable) {
			return true
		}
	}
	return false
}

func (g *DispatchEventsGateway) executeWithMetrics(ctx context.Context, eventType string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := publishResult(err)
	GatewayPublishDuration.WithLabelValues(eventType, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(eventType, result).Inc()
	}

	return err
}

func publishResult(err error) string {
	if err == nil {
		return "ok"
	}
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return kerr.Error()
	}
	return "error"
}
