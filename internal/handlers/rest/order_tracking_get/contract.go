//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_tracking_get_test
package order_tracking_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Tracking(ctx context.Context, orderID string) ([]entities.TrackingEvent, error)
}

type TrackingEvent struct {
	ID        int64   `json:"id"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type TrackingResponse struct {
	OrderID string          `json:"order_id"`
	Events  []TrackingEvent `json:"events"`
}
