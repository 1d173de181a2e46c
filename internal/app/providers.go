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
	"dispatch/pkg/background"
	"dispatch/pkg/deferred"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideServiceZone(repository zoneService.Repository) *zoneService.Zone {
	return zoneService.New(repository)
}

func provideServiceRider(repository riderService.Repository, cfg *config.Config) *riderService.Rider {
	return riderService.New(repository, riderService.Config{
		LoadCeiling: cfg.Dispatch.LoadCeiling,
	})
}

func provideServiceTracking(repository trackingService.Repository) *trackingService.Tracking {
	return trackingService.New(repository)
}

// provideScheduler таймеры офферов живут до остановки приложения,
// cleanup отменяет еще не сработавшие.
func provideScheduler(ctx context.Context) (*deferred.Scheduler, func()) {
	scheduler := deferred.New(ctx)
	return scheduler, scheduler.Stop
}

func provideDispatchEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *dispatch_events.DispatchEventsGateway {
	return dispatch_events.New(producer, cfg.Kafka.DispatchEventsTopic)
}

func provideOfferDeadlineFactory(cfg *config.Config) *offer_deadline.OfferDeadlineFactory {
	return offer_deadline.New(cfg.Dispatch.OfferTimeout)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	riderService dispatchService.RiderService,
	zoneResolver dispatchService.ZoneResolver,
	tracking dispatchService.TrackingLog,
	scheduler dispatchService.Scheduler,
	publisher dispatchService.EventPublisher,
	deadlineFactory dispatchService.OfferDeadlineFactory,
	txManager dispatchService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
		repository,
		riderService,
		zoneResolver,
		tracking,
		scheduler,
		publisher,
		deadlineFactory,
		txManager,
		log.With(logger.NewField("component", "dispatch")),
		dispatchService.Config{
			BulkConcurrency: cfg.Dispatch.BulkConcurrency,
		},
	)
}

func provideOfferExpiryTask(
	log logger.Logger,
	service offer_expiry.Service,
	cfg *config.Config,
) *offer_expiry.OfferExpiry {
	return offer_expiry.NewOfferExpiry(log, service, cfg.Tasks.OfferExpiryInterval)
}

func provideTaskList(offerExpiryTask *offer_expiry.OfferExpiry) []background.Task {
	return []background.Task{
		offerExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, func(), error) {
	worker, err := background.New(ctx, log, tasks)
	if err != nil {
		return nil, nil, err
	}
	return worker, worker.Stop, nil
}

func provideStatusHandlerFactory(dispatchService order_handle.DispatchService) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(dispatchService)
}

func provideOrderService(
	orderReader orderService.OrderReader,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(orderReader, handlerFactory)
}
