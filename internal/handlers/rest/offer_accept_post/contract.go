//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_accept_post_test
package offer_accept_post

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
	Accept(ctx context.Context, orderID string, riderID int64) (*entities.Order, error)
}

type AcceptRequest struct {
	OrderID string `json:"order_id"`
	RiderID int64  `json:"rider_id"`
}

type AcceptResponse struct {
	Success bool    `json:"success"`
	OrderID *string `json:"order_id,omitempty"`
	RiderID *int64  `json:"rider_id,omitempty"`
	Status  *string `json:"status,omitempty"`
	Message *string `json:"message,omitempty"`
}
