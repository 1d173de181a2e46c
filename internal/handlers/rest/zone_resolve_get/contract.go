//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_resolve_get_test
package zone_resolve_get

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Resolve(ctx context.Context, address string) (*int64, error)
}

// ZoneResolveResponse zone_id равен null, если адрес не попал ни в одну зону.
type ZoneResolveResponse struct {
	Address string `json:"address"`
	ZoneID  *int64 `json:"zone_id"`
	Matched bool   `json:"matched"`
}
