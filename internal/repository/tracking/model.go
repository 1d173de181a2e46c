package tracking

import "time"

type TrackingEventDB struct {
	ID        int64
	OrderID   string
	Status    string
	Note      *string
	CreatedAt time.Time
}
