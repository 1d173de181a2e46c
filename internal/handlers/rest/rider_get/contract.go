//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_get_test
package rider_get

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
	GetRider(ctx context.Context, id int64) (*entities.Rider, error)
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
