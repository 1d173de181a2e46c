//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, event entities.TrackingEvent) (int64, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.TrackingEvent, error)
}
