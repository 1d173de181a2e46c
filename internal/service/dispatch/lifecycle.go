package dispatch

import (
	"context"
	"fmt"

	"dispatch/internal/entities"

	"github.com/AlekSi/pointer"
	"golang.org/x/sync/errgroup"
)

const (
	noteConfirmed = "Order confirmed"
	noteCancelled = "Order cancelled"
)

// Confirm переводит pending заказ в confirmed. Повторное подтверждение
// возвращает заказ без изменений.
func (d *Dispatch) Confirm(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var confirmed *entities.Order
	_, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		switch {
		case order.Status.IsTerminal():
			return ErrOrderAlreadyTerminal
		case order.Status == entities.OrderConfirmed:
			confirmed = order
			return nil
		case order.Status != entities.OrderPending:
			return ErrTransitionNotAllowed
		}

		at := d.stamp(order)
		if err := d.repository.SetStatus(ctx, order.ID, entities.OrderConfirmed, at); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		order.Status = entities.OrderConfirmed
		order.Milestones.Set(entities.OrderConfirmed, at)

		if _, err := d.tracking.Append(ctx, order.ID, entities.OrderConfirmed, pointer.To(noteConfirmed)); err != nil {
			return fmt.Errorf("append tracking: %w", err)
		}

		tr.emit(entities.DispatchEvent{
			OrderID:    order.ID,
			Type:       entities.EventConfirmed,
			Status:     order.Status,
			OccurredAt: at,
		})
		confirmed = order
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("confirm order %s: %w", orderID, err)
	}

	return confirmed, nil
}

// Advance курьер продвигает свой заказ на следующий шаг:
// assigned -> picked_up -> in_transit -> delivered. Пропускать шаги нельзя.
func (d *Dispatch) Advance(
	ctx context.Context,
	orderID string,
	riderID int64,
	next entities.OrderStatusType,
	note *string,
) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}
	note = normalizeNote(note)

	var advanced *entities.Order
	_, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if order.Status.IsTerminal() {
			return ErrOrderAlreadyTerminal
		}
		if !order.Assignment.IsAcceptedBy(riderID) {
			return fmt.Errorf("order is not held by rider %d: %w", riderID, ErrTransitionNotAllowed)
		}
		expected, ok := order.Status.RiderNext()
		if !ok || expected != next {
			return fmt.Errorf("%s -> %s: %w", order.Status, next, ErrTransitionNotAllowed)
		}

		at := d.stamp(order)
		if err := d.repository.SetStatus(ctx, order.ID, next, at); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		order.Status = next
		order.Milestones.Set(next, at)

		if _, err := d.tracking.Append(ctx, order.ID, next, note); err != nil {
			return fmt.Errorf("append tracking: %w", err)
		}
		if next == entities.OrderDelivered {
			if _, err := d.riderService.CompleteDelivery(ctx, riderID); err != nil {
				return fmt.Errorf("complete delivery: %w", err)
			}
		}

		tr.emit(entities.DispatchEvent{
			OrderID:    order.ID,
			Type:       entities.EventAdvanced,
			RiderID:    pointer.To(riderID),
			Status:     next,
			OccurredAt: at,
		})
		advanced = order
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("advance order %s: %w", orderID, err)
	}

	return advanced, nil
}

// AdvanceBulk продвигает каждый заказ bulk-группы независимо, в своей транзакции.
// Ошибка одного заказа не откатывает остальные и попадает в его AdvanceOutcome.
// Ошибка возвращается, только если группу не удалось загрузить.
func (d *Dispatch) AdvanceBulk(
	ctx context.Context,
	bulkOrderID int64,
	riderID int64,
	next entities.OrderStatusType,
	note *string,
) ([]entities.AdvanceOutcome, error) {
	if !isValidID(bulkOrderID) {
		return nil, ErrInvalidBulkID
	}

	orderIDs, err := d.repository.GetBulkSiblingIDs(ctx, bulkOrderID)
	if err != nil {
		return nil, fmt.Errorf("get bulk siblings: %w", err)
	}
	if len(orderIDs) == 0 {
		return nil, ErrBulkOrderNotFound
	}

	outcomes := make([]entities.AdvanceOutcome, len(orderIDs))
	var g errgroup.Group
	g.SetLimit(d.bulkConcurrency)
	for i, orderID := range orderIDs {
		g.Go(func() error {
			order, err := d.Advance(ctx, orderID, riderID, next, note)
			outcomes[i] = entities.AdvanceOutcome{
				OrderID: orderID,
				Order:   order,
				Err:     err,
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, nil
}

// AdvanceWithSiblings продвигает заказ и, если он входит в bulk-группу,
// всех его соседей. Заказ вне группы дает один результат.
func (d *Dispatch) AdvanceWithSiblings(
	ctx context.Context,
	orderID string,
	riderID int64,
	next entities.OrderStatusType,
	note *string,
) ([]entities.AdvanceOutcome, error) {
	order, err := d.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BulkOrderID == nil {
		advanced, err := d.Advance(ctx, orderID, riderID, next, note)
		return []entities.AdvanceOutcome{{OrderID: orderID, Order: advanced, Err: err}}, nil
	}

	return d.AdvanceBulk(ctx, *order.BulkOrderID, riderID, next, note)
}

// Cancel отменяет нетерминальный заказ. Активный оффер снимается,
// принявший заказ курьер освобождается.
func (d *Dispatch) Cancel(ctx context.Context, orderID string, note *string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	note = normalizeNote(note)
	if note == nil {
		note = pointer.To(noteCancelled)
	}

	var cancelled *entities.Order
	_, err := d.inOrderTx(ctx, orderID, func(ctx context.Context, order *entities.Order, tr *transition) error {
		if order.Status.IsTerminal() {
			return ErrOrderAlreadyTerminal
		}

		var riderID *int64
		switch order.Assignment.State {
		case entities.AssignmentOffered:
			unassigned := entities.NewUnassigned()
			if err := d.repository.SaveAssignment(ctx, order.ID, unassigned); err != nil {
				return fmt.Errorf("release offer: %w", err)
			}
			order.Assignment = unassigned
		case entities.AssignmentAccepted:
			riderID = pointer.To(order.Assignment.RiderID)
			if _, err := d.riderService.ReleaseOrder(ctx, *riderID); err != nil {
				return fmt.Errorf("release rider: %w", err)
			}
		}

		at := d.stamp(order)
		if err := d.repository.SetStatus(ctx, order.ID, entities.OrderCancelled, at); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		order.Status = entities.OrderCancelled
		order.Milestones.Set(entities.OrderCancelled, at)

		if _, err := d.tracking.Append(ctx, order.ID, entities.OrderCancelled, note); err != nil {
			return fmt.Errorf("append tracking: %w", err)
		}

		tr.stopTimer = true
		tr.emit(entities.DispatchEvent{
			OrderID:    order.ID,
			Type:       entities.EventCancelled,
			RiderID:    riderID,
			Status:     order.Status,
			OccurredAt: at,
		})
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}

	return cancelled, nil
}
