// Package dispatch ведет заказ по жизненному циклу и управляет назначением курьера:
// оффер, принятие, отказ, истечение таймаута и повторный подбор.
//
// Каждый переход выполняется в отдельной транзакции и начинается с блокировки
// строки заказа, поэтому переходы одного заказа применяются строго по очереди.
// Проигравший гонку перечитывает уже закоммиченное состояние и получает
// ErrAssignmentStale или ErrOrderAlreadyTerminal.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/rider"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

const (
	DefaultBulkConcurrency = 4
	DefaultExpiryBatchSize = 100

	noteOffered  = "Order offered to rider"
	noteAccepted = "Order accepted by rider"
)

type Config struct {
	BulkConcurrency int
	ExpiryBatchSize uint64
}

type Dispatch struct {
	repository      Repository
	riderService    RiderService
	zoneResolver    ZoneResolver
	tracking        TrackingLog
	scheduler       Scheduler
	publisher       EventPublisher
	deadlineFactory OfferDeadlineFactory
	txManager       TxManager
	log             serviceLogger

	bulkConcurrency int
	expiryBatchSize uint64
	now             func() time.Time
}

func New(
	repository Repository,
	riderService RiderService,
	zoneResolver ZoneResolver,
	tracking TrackingLog,
	scheduler Scheduler,
	publisher EventPublisher,
	deadlineFactory OfferDeadlineFactory,
	txManager TxManager,
	log serviceLogger,
	cfg Config,
) *Dispatch {
	if cfg.BulkConcurrency <= 0 {
		cfg.BulkConcurrency = DefaultBulkConcurrency
	}
	if cfg.ExpiryBatchSize == 0 {
		cfg.ExpiryBatchSize = DefaultExpiryBatchSize
	}

	return &Dispatch{
		repository:      repository,
		riderService:    riderService,
		zoneResolver:    zoneResolver,
		tracking:        tracking,
		scheduler:       scheduler,
		publisher:       publisher,
		deadlineFactory: deadlineFactory,
		txManager:       txManager,
		log:             log,
		bulkConcurrency: cfg.BulkConcurrency,
		expiryBatchSize: cfg.ExpiryBatchSize,
		now:             time.Now,
	}
}

// transition накапливает побочные эффекты перехода, которые применяются
// только после коммита: события в шину и таймер оффера.
type transition struct {
	orderID string
	events  []entities.DispatchEvent
	result  *entities.DispatchResult
	// stopTimer снять таймер оффера, даже если новый оффер не появился.
	stopTimer bool
}

func (t *transition) emit(event entities.DispatchEvent) {
	t.events = append(t.events, event)
}

// Dispatch подбирает курьера для заказа без активного оффера.
// Если у заказа нет зоны, она один раз определяется по адресу забора.
func (d *Dispatch) Dispatch(ctx context.Context, orderID string) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	tr, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if order.Status.IsTerminal() {
			return ErrOrderAlreadyTerminal
		}
		switch order.Assignment.State {
		case entities.AssignmentAccepted:
			return ErrAlreadyAccepted
		case entities.AssignmentOffered:
			return ErrOfferOutstanding
		}
		if !order.Status.Dispatchable() {
			return ErrTransitionNotAllowed
		}

		return d.dispatchLocked(ctx, order, "dispatch", true, tr)
	})
	if err != nil {
		return nil, fmt.Errorf("dispatch order %s: %w", orderID, err)
	}

	return tr.result, nil
}

// Reassign точка повторного входа: снимает текущий оффер, если он есть,
// исключает этого курьера в текущей эпохе и подбирает следующего.
// Зону по адресу не определяет, заказ без зоны получает DispatchZoneUnresolved.
func (d *Dispatch) Reassign(ctx context.Context, orderID string, reason *string) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	tr, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if order.Status.IsTerminal() {
			return ErrOrderAlreadyTerminal
		}
		if order.Assignment.IsAccepted() {
			return ErrAlreadyAccepted
		}
		if !order.Status.Dispatchable() {
			return ErrTransitionNotAllowed
		}
		if order.PickupZoneID == nil {
			tr.result = &entities.DispatchResult{OrderID: order.ID, Outcome: entities.DispatchZoneUnresolved}
			DispatchOutcomesTotal.WithLabelValues("reassign", entities.DispatchZoneUnresolved.String()).Inc()
			return nil
		}

		if order.Assignment.IsOffered() {
			exclusionReason := entities.ExclusionReasonReassigned
			if note := normalizeNote(reason); note != nil {
				exclusionReason = *note
			}
			if err := d.releaseOffer(ctx, order, exclusionReason, tr); err != nil {
				return err
			}
		}

		return d.dispatchLocked(ctx, order, "reassign", false, tr)
	})
	if err != nil {
		return nil, fmt.Errorf("reassign order %s: %w", orderID, err)
	}

	return tr.result, nil
}

func (d *Dispatch) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// Tracking лента статусов существующего заказа, новые события первыми.
func (d *Dispatch) Tracking(ctx context.Context, orderID string) ([]entities.TrackingEvent, error) {
	if _, err := d.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	events, err := d.tracking.ListFor(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list tracking: %w", err)
	}
	return events, nil
}

// dispatchLocked выполняется внутри транзакции с заблокированным заказом
// в состоянии Unassigned.
func (d *Dispatch) dispatchLocked(
	ctx context.Context,
	order *entities.Order,
	trigger string,
	resolveZone bool,
	tr *transition,
) error {
	now := d.now().UTC()

	if order.PickupZoneID == nil && resolveZone {
		zoneID, err := d.zoneResolver.Resolve(ctx, order.PickupAddress)
		if err != nil {
			return fmt.Errorf("resolve pickup zone: %w", err)
		}
		if zoneID != nil {
			if err := d.repository.SetPickupZone(ctx, order.ID, *zoneID); err != nil {
				return fmt.Errorf("set pickup zone: %w", err)
			}
			order.PickupZoneID = zoneID
		}
	}
	if order.PickupZoneID == nil {
		tr.result = &entities.DispatchResult{OrderID: order.ID, Outcome: entities.DispatchZoneUnresolved}
		DispatchOutcomesTotal.WithLabelValues(trigger, entities.DispatchZoneUnresolved.String()).Inc()
		return nil
	}

	excluded, err := d.repository.GetExcludedRiders(ctx, order.ID, order.DispatchEpoch)
	if err != nil {
		return fmt.Errorf("get excluded riders: %w", err)
	}

	candidate, err := d.riderService.FindCandidate(ctx, *order.PickupZoneID, excluded)
	if errors.Is(err, rider.ErrNoCandidateRider) {
		return d.exhaustLocked(ctx, order, trigger, now, tr)
	}
	if err != nil {
		return fmt.Errorf("find candidate: %w", err)
	}

	deadline := d.deadlineFactory.CalculateOfferDeadline(now).UTC()
	offer := entities.NewOffer(candidate.ID, deadline)
	if err := d.repository.SaveAssignment(ctx, order.ID, offer); err != nil {
		return fmt.Errorf("save offer: %w", err)
	}
	order.Assignment = offer

	if _, err := d.tracking.Append(ctx, order.ID, entities.OrderAssigned, pointer.To(noteOffered)); err != nil {
		return fmt.Errorf("append tracking: %w", err)
	}

	tr.result = &entities.DispatchResult{
		OrderID:   order.ID,
		Outcome:   entities.DispatchOffered,
		RiderID:   candidate.ID,
		TimeoutAt: deadline,
	}
	tr.emit(entities.DispatchEvent{
		OrderID:    order.ID,
		Type:       entities.EventOffered,
		RiderID:    pointer.To(candidate.ID),
		Status:     order.Status,
		TimeoutAt:  pointer.To(deadline),
		OccurredAt: now,
	})
	DispatchOutcomesTotal.WithLabelValues(trigger, entities.DispatchOffered.String()).Inc()
	return nil
}

// exhaustLocked сбрасывает назначение и открывает новую эпоху,
// следующий ручной подбор начнется с пустым списком исключений.
func (d *Dispatch) exhaustLocked(
	ctx context.Context,
	order *entities.Order,
	trigger string,
	now time.Time,
	tr *transition,
) error {
	unassigned := entities.NewUnassigned()
	if err := d.repository.SaveAssignment(ctx, order.ID, unassigned); err != nil {
		return fmt.Errorf("reset assignment: %w", err)
	}
	order.Assignment = unassigned

	epoch, err := d.repository.AdvanceEpoch(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("advance dispatch epoch: %w", err)
	}
	order.DispatchEpoch = epoch

	tr.result = &entities.DispatchResult{OrderID: order.ID, Outcome: entities.DispatchNoCandidate}
	tr.stopTimer = true
	tr.emit(entities.DispatchEvent{
		OrderID:    order.ID,
		Type:       entities.EventExhausted,
		Status:     order.Status,
		OccurredAt: now,
	})
	DispatchOutcomesTotal.WithLabelValues(trigger, entities.DispatchNoCandidate.String()).Inc()
	return nil
}

// releaseOffer исключает курьера текущего оффера в текущей эпохе.
func (d *Dispatch) releaseOffer(ctx context.Context, order *entities.Order, reason string, tr *transition) error {
	riderID := order.Assignment.RiderID
	err := d.repository.AddExclusion(ctx, entities.OfferExclusion{
		OrderID: order.ID,
		Epoch:   order.DispatchEpoch,
		RiderID: riderID,
		Reason:  reason,
	})
	if err != nil {
		return fmt.Errorf("add exclusion: %w", err)
	}

	unassigned := entities.NewUnassigned()
	if err := d.repository.SaveAssignment(ctx, order.ID, unassigned); err != nil {
		return fmt.Errorf("release offer: %w", err)
	}
	order.Assignment = unassigned
	tr.stopTimer = true

	eventType := entities.EventRejected
	if reason == entities.ExclusionReasonTimeout {
		eventType = entities.EventExpired
	}
	tr.emit(entities.DispatchEvent{
		OrderID:    order.ID,
		Type:       eventType,
		RiderID:    pointer.To(riderID),
		Status:     order.Status,
		OccurredAt: d.now().UTC(),
	})
	return nil
}

// inOrderTx блокирует заказ, выполняет fn и после коммита применяет
// накопленные побочные эффекты.
func (d *Dispatch) inOrderTx(
	ctx context.Context,
	orderID string,
	fn func(ctx context.Context, order *entities.Order, tr *transition) error,
) (*transition, error) {
	var tr *transition
	err := d.txManager.DoLocked(ctx, func(ctx context.Context) error {
		// транзакция может быть перезапущена, эффекты копим заново
		tr = &transition{orderID: orderID}

		order, err := d.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		return fn(ctx, order, tr)
	})
	if err != nil {
		return nil, err
	}

	d.afterCommit(ctx, tr)
	return tr, nil
}

func (d *Dispatch) afterCommit(ctx context.Context, tr *transition) {
	switch {
	case tr.result != nil && tr.result.Outcome == entities.DispatchOffered:
		if !d.scheduler.Schedule(tr.orderID, tr.result.TimeoutAt, d.onOfferTimeout(tr.orderID)) {
			d.log.Warn("offer timer not armed, scheduler stopped",
				logger.NewField("order_id", tr.orderID),
			)
		}
	case tr.stopTimer:
		d.scheduler.Cancel(tr.orderID)
	}

	for _, event := range tr.events {
		TransitionsTotal.WithLabelValues(event.Type.String()).Inc()
		if err := d.publisher.Publish(ctx, event); err != nil {
			d.log.Error("failed to publish dispatch event",
				logger.NewField("order_id", event.OrderID),
				logger.NewField("type", event.Type.String()),
				logger.NewField("error", err),
			)
		}
	}
}

func (d *Dispatch) onOfferTimeout(orderID string) func(ctx context.Context) {
	return func(ctx context.Context) {
		result, err := d.Expire(ctx, orderID)
		switch {
		case errors.Is(err, ErrAssignmentStale):
			// оффер уже принят, отклонен или снят, таймер опоздал
			return
		case err != nil:
			d.log.Error("offer expiry failed",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
		default:
			d.log.Info("offer expired",
				logger.NewField("order_id", orderID),
				logger.NewField("outcome", result.Outcome.String()),
			)
		}
	}
}

// stamp время для новой метки: не раньше уже проставленных.
func (d *Dispatch) stamp(order *entities.Order) time.Time {
	now := d.now().UTC()
	if latest := order.Milestones.Latest(); latest.After(now) {
		return latest
	}
	return now
}
