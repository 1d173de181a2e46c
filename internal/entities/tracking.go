package entities

import "time"

// TrackingEvent неизменяемая запись ленты статусов заказа.
type TrackingEvent struct {
	ID        int64
	OrderID   string
	Status    OrderStatusType
	Note      *string
	CreatedAt time.Time
}
