//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	GetAll(ctx context.Context) ([]entities.Rider, error)
	Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error)

	FindLeastLoaded(ctx context.Context, zoneID int64, exclude []int64, loadCeiling int) (*entities.Rider, error)
	IncrementActiveOrders(ctx context.Context, id int64) (*entities.RiderLoad, error)
	CompleteDelivery(ctx context.Context, id int64) (*entities.RiderLoad, error)
	ReleaseOrder(ctx context.Context, id int64) (*entities.RiderLoad, error)
}
