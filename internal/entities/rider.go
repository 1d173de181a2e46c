package entities

import (
	"time"
)

type Rider struct {
	ID                  int64
	Name                string
	Phone               string
	Status              RiderStatusType
	ZoneID              *int64
	ActiveOrders        int
	CompletedDeliveries int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type RiderStatusType string

const (
	RiderOnline  RiderStatusType = "online"
	RiderOffline RiderStatusType = "offline"
)

const DefaultRiderStatus = RiderOffline

func (t RiderStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID       *int64
	Name     *string
	Phone    *string
	Status   *RiderStatusType
	ZoneID   *int64
	IsActive *bool
}

// RiderLoad результат атомарного изменения счетчиков курьера.
type RiderLoad struct {
	RiderID             int64
	ActiveOrders        int
	CompletedDeliveries int
}
