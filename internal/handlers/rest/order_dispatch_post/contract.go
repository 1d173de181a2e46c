//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_dispatch_post_test
package order_dispatch_post

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
	Dispatch(ctx context.Context, orderID string) (*entities.DispatchResult, error)
}

type DispatchRequest struct {
	OrderID string `json:"order_id"`
}

type DispatchResponse struct {
	Success   bool    `json:"success"`
	Outcome   *string `json:"outcome,omitempty"`
	RiderID   *int64  `json:"rider_id,omitempty"`
	TimeoutAt *string `json:"timeout_at,omitempty"`
	Message   *string `json:"message,omitempty"`
}
