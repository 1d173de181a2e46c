//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_post_test
package rider_post

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
	CreateRider(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error)
}

type RiderCreate struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Status *string `json:"status,omitempty"`
	ZoneID *int64  `json:"zone_id,omitempty"`
}

type RiderCreateResponse struct {
	ID int64 `json:"id"`
}
