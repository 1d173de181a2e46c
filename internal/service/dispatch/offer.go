package dispatch

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

// Accept курьер принимает оффер. Оффер должен принадлежать этому курьеру
// и еще не истечь, иначе ErrAssignmentStale.
func (d *Dispatch) Accept(ctx context.Context, orderID string, riderID int64) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	var accepted *entities.Order
	_, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if order.Status.IsTerminal() {
			return ErrOrderAlreadyTerminal
		}
		now := d.now().UTC()
		if !order.Assignment.IsOfferedTo(riderID) || order.Assignment.OfferExpired(now) {
			return ErrAssignmentStale
		}

		assignment := entities.NewAccepted(riderID)
		if err := d.repository.SaveAssignment(ctx, order.ID, assignment); err != nil {
			return fmt.Errorf("save acceptance: %w", err)
		}
		order.Assignment = assignment

		at := d.stamp(order)
		if err := d.repository.SetStatus(ctx, order.ID, entities.OrderAssigned, at); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		order.Status = entities.OrderAssigned
		order.Milestones.Set(entities.OrderAssigned, at)

		if _, err := d.tracking.Append(ctx, order.ID, entities.OrderAssigned, pointer.To(noteAccepted)); err != nil {
			return fmt.Errorf("append tracking: %w", err)
		}
		if _, err := d.riderService.IncrementActiveOrders(ctx, riderID); err != nil {
			return fmt.Errorf("increment rider load: %w", err)
		}

		tr.stopTimer = true
		tr.emit(entities.DispatchEvent{
			OrderID:    order.ID,
			Type:       entities.EventAccepted,
			RiderID:    pointer.To(riderID),
			Status:     order.Status,
			OccurredAt: now,
		})
		accepted = order
		return nil
	})
	if err != nil {
		d.logStale(err, "accept", orderID, riderID)
		return nil, fmt.Errorf("accept offer: %w", err)
	}

	return accepted, nil
}

// Reject курьер отказывается от оффера. Курьер исключается до конца эпохи,
// заказ сразу уходит следующему кандидату в той же транзакции.
func (d *Dispatch) Reject(ctx context.Context, orderID string, riderID int64, reason *string) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	exclusionReason := entities.ExclusionReasonRejected
	if note := normalizeNote(reason); note != nil {
		exclusionReason = *note
	}

	tr, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if order.Status.IsTerminal() {
			return ErrOrderAlreadyTerminal
		}
		if !order.Assignment.IsOfferedTo(riderID) {
			return ErrAssignmentStale
		}

		if err := d.releaseOffer(ctx, order, exclusionReason, tr); err != nil {
			return err
		}
		return d.dispatchLocked(ctx, order, "reject", false, tr)
	})
	if err != nil {
		d.logStale(err, "reject", orderID, riderID)
		return nil, fmt.Errorf("reject offer: %w", err)
	}

	return tr.result, nil
}

// Expire снимает просроченный оффер и подбирает следующего курьера.
// Повторный вызов, когда оффер уже сменился, возвращает ErrAssignmentStale.
func (d *Dispatch) Expire(ctx context.Context, orderID string) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	tr, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if !order.Assignment.OfferExpired(d.now().UTC()) {
			return ErrAssignmentStale
		}

		if err := d.releaseOffer(ctx, order, entities.ExclusionReasonTimeout, tr); err != nil {
			return err
		}
		return d.dispatchLocked(ctx, order, "expire", false, tr)
	})
	if err != nil {
		if errors.Is(err, ErrAssignmentStale) {
			StaleResponsesTotal.WithLabelValues("expire").Inc()
		}
		return nil, fmt.Errorf("expire offer: %w", err)
	}

	return tr.result, nil
}

// ExpireOverdueOffers добирает офферы, таймер которых не сработал на этом
// инстансе: рестарт процесса или оффер выдан другим инстансом.
func (d *Dispatch) ExpireOverdueOffers(ctx context.Context) (int, error) {
	orderIDs, err := d.repository.ListExpiredOffers(ctx, d.now().UTC(), d.expiryBatchSize)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("list expired offers timed out: %w", err)
		}
		return 0, fmt.Errorf("list expired offers: %w", err)
	}

	var (
		expired int
		errs    []error
	)
	for _, orderID := range orderIDs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		_, err := d.Expire(ctx, orderID)
		switch {
		case errors.Is(err, ErrAssignmentStale):
		case err != nil:
			errs = append(errs, err)
		default:
			expired++
		}
	}

	return expired, errors.Join(errs...)
}

func (d *Dispatch) logStale(err error, operation string, orderID string, riderID int64) {
	if !errors.Is(err, ErrAssignmentStale) {
		return
	}
	StaleResponsesTotal.WithLabelValues(operation).Inc()
	d.log.Warn("stale offer response ignored",
		logger.NewField("operation", operation),
		logger.NewField("order_id", orderID),
		logger.NewField("rider_id", riderID),
	)
}
