//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	// GetByIDForUpdate блокирует строку заказа до конца транзакции.
	GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error)

	SaveAssignment(ctx context.Context, orderID string, assignment entities.Assignment) error
	SetStatus(ctx context.Context, orderID string, status entities.OrderStatusType, at time.Time) error
	SetPickupZone(ctx context.Context, orderID string, zoneID int64) error
	AdvanceEpoch(ctx context.Context, orderID string) (int, error)

	AddExclusion(ctx context.Context, exclusion entities.OfferExclusion) error
	GetExcludedRiders(ctx context.Context, orderID string, epoch int) ([]int64, error)

	GetBulkSiblingIDs(ctx context.Context, bulkOrderID int64) ([]string, error)
	ListExpiredOffers(ctx context.Context, now time.Time, limit uint64) ([]string, error)
}

type RiderService interface {
	FindCandidate(ctx context.Context, zoneID int64, exclude []int64) (*entities.Rider, error)
	IncrementActiveOrders(ctx context.Context, id int64) (*entities.RiderLoad, error)
	CompleteDelivery(ctx context.Context, id int64) (*entities.RiderLoad, error)
	ReleaseOrder(ctx context.Context, id int64) (*entities.RiderLoad, error)
}

type ZoneResolver interface {
	Resolve(ctx context.Context, address string) (*int64, error)
}

type TrackingLog interface {
	Append(ctx context.Context, orderID string, status entities.OrderStatusType, note *string) (int64, error)
	ListFor(ctx context.Context, orderID string) ([]entities.TrackingEvent, error)
}

type Scheduler interface {
	Schedule(key string, at time.Time, action func(ctx context.Context)) bool
	Cancel(key string) bool
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.DispatchEvent) error
}

type OfferDeadlineFactory interface {
	CalculateOfferDeadline(baseTime time.Time) time.Time
}

type TxManager interface {
	DoLocked(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
