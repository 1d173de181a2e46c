//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_put_test
package rider_put

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
	UpdateRider(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error)
}

// RiderUpdate все поля кроме id опциональны.
type RiderUpdate struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Status   *string `json:"status,omitempty"`
	ZoneID   *int64  `json:"zone_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type Rider struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Status              string `json:"status"`
	ZoneID              *int64 `json:"zone_id,omitempty"`
	ActiveOrders        int    `json:"active_orders"`
	CompletedDeliveries int    `json:"completed_deliveries"`
	IsActive            bool   `json:"is_active"`
}
