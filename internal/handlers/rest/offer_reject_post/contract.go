//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_reject_post_test
package offer_reject_post

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
	Reject(ctx context.Context, orderID string, riderID int64, reason *string) (*entities.DispatchResult, error)
}

type RejectRequest struct {
	OrderID string  `json:"order_id"`
	RiderID int64   `json:"rider_id"`
	Reason  *string `json:"reason,omitempty"`
}

// RejectResponse outcome показывает, что стало с заказом после отказа:
// ушел следующему курьеру (offered) или вернулся в очередь.
type RejectResponse struct {
	Success     bool    `json:"success"`
	Outcome     *string `json:"outcome,omitempty"`
	NextRiderID *int64  `json:"next_rider_id,omitempty"`
	TimeoutAt   *string `json:"timeout_at,omitempty"`
	Message     *string `json:"message,omitempty"`
}
