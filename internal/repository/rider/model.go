package rider

import "time"

type RiderDB struct {
	ID                  int64
	Name                string
	Phone               string
	Status              string
	ZoneID              *int64
	ActiveOrders        int
	CompletedDeliveries int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type RiderModifyDB struct {
	ID       *int64
	Name     *string
	Phone    *string
	Status   *string
	ZoneID   *int64
	IsActive *bool
}

type RiderLoadDB struct {
	ID                  int64
	ActiveOrders        int
	CompletedDeliveries int
}
