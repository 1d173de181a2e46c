//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_reassign_post_test
package dispatch_reassign_post

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
	Reassign(ctx context.Context, orderID string, reason *string) (*entities.DispatchResult, error)
}

type ReassignRequest struct {
	OrderID string  `json:"order_id"`
	Reason  *string `json:"reason,omitempty"`
}

// ReassignResponse при success=true заполнены rider_id и timeout_at,
// иначе message.
type ReassignResponse struct {
	Success   bool    `json:"success"`
	RiderID   *int64  `json:"rider_id,omitempty"`
	TimeoutAt *string `json:"timeout_at,omitempty"`
	Message   *string `json:"message,omitempty"`
}
