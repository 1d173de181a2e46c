//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/gateway/kafka/dispatch_events"
	"dispatch/internal/handlers/tasks/offer_expiry"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/offer_deadline"
	"dispatch/internal/pkg/factory/order_handle"
	orderRepo "dispatch/internal/repository/order"
	riderRepo "dispatch/internal/repository/rider"
	trackingRepo "dispatch/internal/repository/tracking"
	zoneRepo "dispatch/internal/repository/zone"
	dispatchService "dispatch/internal/service/dispatch"
	orderService "dispatch/internal/service/order"
	riderService "dispatch/internal/service/rider"
	trackingService "dispatch/internal/service/tracking"
	zoneService "dispatch/internal/service/zone"
	"dispatch/pkg/deferred"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideZoneRepository,
	provideRiderRepository,
	provideOrderRepository,
	provideTrackingRepository,

	wire.Bind(new(zoneService.Repository), new(*zoneRepo.Repository)),
	wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
	wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
	wire.Bind(new(dispatchService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
)

var dispatchSet = wire.NewSet(
	repositorySet,

	provideServiceZone,
	provideServiceRider,
	provideServiceTracking,
	provideScheduler,
	provideDispatchEventsGateway,
	provideOfferDeadlineFactory,
	provideServiceDispatch,

	wire.Bind(new(dispatchService.RiderService), new(*riderService.Rider)),
	wire.Bind(new(dispatchService.ZoneResolver), new(*zoneService.Zone)),
	wire.Bind(new(dispatchService.TrackingLog), new(*trackingService.Tracking)),
	wire.Bind(new(dispatchService.Scheduler), new(*deferred.Scheduler)),
	wire.Bind(new(dispatchService.EventPublisher), new(*dispatch_events.DispatchEventsGateway)),
	wire.Bind(new(dispatchService.OfferDeadlineFactory), new(*offer_deadline.OfferDeadlineFactory)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		dispatchSet,

		provideOfferExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceZone), new(*zoneService.Zone)),
		wire.Bind(new(offer_expiry.Service), new(*dispatchService.Dispatch)),
	)
	return nil, nil, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, func(), error) {
	wire.Build(
		dispatchSet,

		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(order_handle.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(orderService.OrderReader), new(*dispatchService.Dispatch)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil, nil
}
