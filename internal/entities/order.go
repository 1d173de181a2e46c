package entities

import "time"

type Order struct {
	ID            string
	OrderNumber   string
	Status        OrderStatusType
	Assignment    Assignment
	PickupAddress string
	PickupZoneID  *int64
	BulkOrderID   *int64
	DispatchEpoch int
	Milestones    Milestones
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderAssigned  OrderStatusType = "assigned"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderAssigned, OrderPickedUp,
		OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Dispatchable статусы, в которых заказ еще ждет курьера.
func (s OrderStatusType) Dispatchable() bool {
	return s == OrderPending || s == OrderConfirmed
}

// RiderNext следующий шаг ручного продвижения курьером.
func (s OrderStatusType) RiderNext() (OrderStatusType, bool) {
	switch s {
	case OrderAssigned:
		return OrderPickedUp, true
	case OrderPickedUp:
		return OrderInTransit, true
	case OrderInTransit:
		return OrderDelivered, true
	default:
		return "", false
	}
}

type Milestones struct {
	ConfirmedAt *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// Get метка статуса, nil если не проставлена или у статуса нет метки.
func (m Milestones) Get(status OrderStatusType) *time.Time {
	switch status {
	case OrderConfirmed:
		return m.ConfirmedAt
	case OrderAssigned:
		return m.AssignedAt
	case OrderPickedUp:
		return m.PickedUpAt
	case OrderInTransit:
		return m.InTransitAt
	case OrderDelivered:
		return m.DeliveredAt
	case OrderCancelled:
		return m.CancelledAt
	default:
		return nil
	}
}

// Set проставляет метку один раз, повторный вызов ничего не меняет.
func (m *Milestones) Set(status OrderStatusType, at time.Time) {
	var field **time.Time
	switch status {
	case OrderConfirmed:
		field = &m.ConfirmedAt
	case OrderAssigned:
		field = &m.AssignedAt
	case OrderPickedUp:
		field = &m.PickedUpAt
	case OrderInTransit:
		field = &m.InTransitAt
	case OrderDelivered:
		field = &m.DeliveredAt
	case OrderCancelled:
		field = &m.CancelledAt
	default:
		return
	}
	if *field == nil {
		*field = &at
	}
}

// Latest самая поздняя из проставленных меток, zero time если меток нет.
func (m Milestones) Latest() time.Time {
	var latest time.Time
	for _, ts := range []*time.Time{m.ConfirmedAt, m.AssignedAt, m.PickedUpAt, m.InTransitAt, m.DeliveredAt, m.CancelledAt} {
		if ts != nil && ts.After(latest) {
			latest = *ts
		}
	}
	return latest
}

// OrderEvent событие жизненного цикла заказа от платформы заказов.
type OrderEvent struct {
	OrderID string
	Status  OrderStatusType
}
