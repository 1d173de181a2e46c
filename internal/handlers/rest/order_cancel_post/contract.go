//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_cancel_post_test
package order_cancel_post

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
	Cancel(ctx context.Context, orderID string, note *string) (*entities.Order, error)
}

type CancelRequest struct {
	OrderID string  `json:"order_id"`
	Note    *string `json:"note,omitempty"`
}

type CancelResponse struct {
	OrderID     string  `json:"order_id"`
	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}
