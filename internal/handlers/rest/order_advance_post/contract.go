//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_advance_post_test
package order_advance_post

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
	Advance(ctx context.Context, orderID string, riderID int64, next entities.OrderStatusType, note *string) (*entities.Order, error)
	AdvanceWithSiblings(ctx context.Context, orderID string, riderID int64, next entities.OrderStatusType, note *string) ([]entities.AdvanceOutcome, error)
}

type AdvanceRequest struct {
	OrderID             string  `json:"order_id"`
	RiderID             int64   `json:"rider_id"`
	NextStatus          string  `json:"next_status"`
	Note                *string `json:"note,omitempty"`
	ApplyToBulkSiblings bool    `json:"apply_to_bulk_siblings,omitempty"`
}

type AdvanceResult struct {
	OrderID string  `json:"order_id"`
	Success bool    `json:"success"`
	Status  *string `json:"status,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// AdvanceResponse status пуст, если сам заказ из запроса продвинуть не удалось.
type AdvanceResponse struct {
	OrderID string          `json:"order_id"`
	Status  *string         `json:"status,omitempty"`
	Results []AdvanceResult `json:"results,omitempty"`
}
