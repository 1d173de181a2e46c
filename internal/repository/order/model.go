package order

import "time"

type OrderDB struct {
	ID                  string
	OrderNumber         string
	Status              string
	AssignedRiderID     *int64
	RiderID             *int64
	AssignmentStatus    string
	AssignmentTimeoutAt *time.Time
	PickupAddress       string
	PickupZoneID        *int64
	BulkOrderID         *int64
	DispatchEpoch       int
	ConfirmedAt         *time.Time
	AssignedAt          *time.Time
	PickedUpAt          *time.Time
	InTransitAt         *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AssignmentDB колонки назначения в том виде, как они лежат в orders.
type AssignmentDB struct {
	AssignedRiderID     *int64
	RiderID             *int64
	AssignmentStatus    string
	AssignmentTimeoutAt *time.Time
}
