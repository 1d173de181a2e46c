package order

import (
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	assignment, err := ToAssignmentDomain(AssignmentDB{
		AssignedRiderID:     o.AssignedRiderID,
		RiderID:             o.RiderID,
		AssignmentStatus:    o.AssignmentStatus,
		AssignmentTimeoutAt: o.AssignmentTimeoutAt,
	})
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.ID, err)
	}

	return &entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        entities.OrderStatusType(o.Status),
		Assignment:    assignment,
		PickupAddress: o.PickupAddress,
		PickupZoneID:  o.PickupZoneID,
		BulkOrderID:   o.BulkOrderID,
		DispatchEpoch: o.DispatchEpoch,
		Milestones: entities.Milestones{
			ConfirmedAt: utc(o.ConfirmedAt),
			AssignedAt:  utc(o.AssignedAt),
			PickedUpAt:  utc(o.PickedUpAt),
			InTransitAt: utc(o.InTransitAt),
			DeliveredAt: utc(o.DeliveredAt),
			CancelledAt: utc(o.CancelledAt),
		},
		CreatedAt: o.CreatedAt.UTC(),
		UpdatedAt: o.UpdatedAt.UTC(),
	}, nil
}

// ToAssignmentDomain собирает вариант назначения из nullable колонок.
// Строка, нарушающая инварианты, дает ErrCorruptAssignment.
func ToAssignmentDomain(a AssignmentDB) (entities.Assignment, error) {
	switch entities.AssignmentStatusType(a.AssignmentStatus) {
	case entities.AssignmentStatusPending:
		if a.RiderID != nil || a.AssignedRiderID != nil {
			return entities.Assignment{}, fmt.Errorf("pending with rider: %w", dispatch.ErrCorruptAssignment)
		}
		return entities.NewUnassigned(), nil

	case entities.AssignmentStatusAssigned:
		if a.RiderID != nil {
			return entities.Assignment{}, fmt.Errorf("offer with accepted rider: %w", dispatch.ErrCorruptAssignment)
		}
		if a.AssignedRiderID == nil || a.AssignmentTimeoutAt == nil {
			return entities.Assignment{}, fmt.Errorf("offer without rider or timeout: %w", dispatch.ErrCorruptAssignment)
		}
		return entities.NewOffer(*a.AssignedRiderID, a.AssignmentTimeoutAt.UTC()), nil

	case entities.AssignmentStatusAccepted:
		if a.RiderID == nil {
			return entities.Assignment{}, fmt.Errorf("accepted without rider: %w", dispatch.ErrCorruptAssignment)
		}
		return entities.NewAccepted(*a.RiderID), nil

	default:
		return entities.Assignment{}, fmt.Errorf("assignment status %q: %w", a.AssignmentStatus, dispatch.ErrCorruptAssignment)
	}
}

// FromAssignmentDomain раскладывает вариант обратно по колонкам.
// У принятого заказа assigned_rider_id остается равным rider_id.
func FromAssignmentDomain(a entities.Assignment) AssignmentDB {
	switch a.State {
	case entities.AssignmentOffered:
		riderID, timeoutAt := a.RiderID, a.ExpiresAt
		return AssignmentDB{
			AssignedRiderID:     &riderID,
			AssignmentStatus:    a.Status().String(),
			AssignmentTimeoutAt: &timeoutAt,
		}
	case entities.AssignmentAccepted:
		riderID := a.RiderID
		return AssignmentDB{
			AssignedRiderID:  &riderID,
			RiderID:          &riderID,
			AssignmentStatus: a.Status().String(),
		}
	default:
		return AssignmentDB{AssignmentStatus: a.Status().String()}
	}
}

// milestoneColumn колонка метки для статуса, пусто для pending.
func milestoneColumn(status entities.OrderStatusType) string {
	switch status {
	case entities.OrderConfirmed:
		return "confirmed_at"
	case entities.OrderAssigned:
		return "assigned_at"
	case entities.OrderPickedUp:
		return "picked_up_at"
	case entities.OrderInTransit:
		return "in_transit_at"
	case entities.OrderDelivered:
		return "delivered_at"
	case entities.OrderCancelled:
		return "cancelled_at"
	default:
		return ""
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
