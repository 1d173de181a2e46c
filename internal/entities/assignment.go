package entities

import (
	"fmt"
	"time"
)

// AssignmentState явное состояние назначения заказа.
// В хранилище оно разложено на assignment_status + nullable поля,
// в коде работаем только с вариантом.
type AssignmentState int

const (
	AssignmentUnassigned AssignmentState = iota
	AssignmentOffered
	AssignmentAccepted
)

func (s AssignmentState) String() string {
	switch s {
	case AssignmentUnassigned:
		return "unassigned"
	case AssignmentOffered:
		return "offered"
	case AssignmentAccepted:
		return "accepted"
	default:
		return fmt.Sprintf("AssignmentState(%d)", int(s))
	}
}

// AssignmentStatusType значение колонки assignment_status.
type AssignmentStatusType string

const (
	AssignmentStatusPending  AssignmentStatusType = "pending"
	AssignmentStatusAssigned AssignmentStatusType = "assigned"
	AssignmentStatusAccepted AssignmentStatusType = "accepted"
)

func (t AssignmentStatusType) String() string {
	return string(t)
}

// Assignment RiderID значим для Offered и Accepted, ExpiresAt только для Offered.
type Assignment struct {
	State     AssignmentState
	RiderID   int64
	ExpiresAt time.Time
}

func NewUnassigned() Assignment {
	return Assignment{State: AssignmentUnassigned}
}

func NewOffer(riderID int64, expiresAt time.Time) Assignment {
	return Assignment{
		State:     AssignmentOffered,
		RiderID:   riderID,
		ExpiresAt: expiresAt,
	}
}

func NewAccepted(riderID int64) Assignment {
	return Assignment{
		State:   AssignmentAccepted,
		RiderID: riderID,
	}
}

func (a Assignment) Status() AssignmentStatusType {
	switch a.State {
	case AssignmentOffered:
		return AssignmentStatusAssigned
	case AssignmentAccepted:
		return AssignmentStatusAccepted
	default:
		return AssignmentStatusPending
	}
}

func (a Assignment) IsOffered() bool {
	return a.State == AssignmentOffered
}

func (a Assignment) IsAccepted() bool {
	return a.State == AssignmentAccepted
}

func (a Assignment) IsOfferedTo(riderID int64) bool {
	return a.State == AssignmentOffered && a.RiderID == riderID
}

func (a Assignment) IsAcceptedBy(riderID int64) bool {
	return a.State == AssignmentAccepted && a.RiderID == riderID
}

// OfferExpired true только для Offered, у которого наступил дедлайн.
func (a Assignment) OfferExpired(now time.Time) bool {
	return a.State == AssignmentOffered && !now.Before(a.ExpiresAt)
}
