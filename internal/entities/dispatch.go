package entities

import "time"

type DispatchOutcome string

const (
	// DispatchOffered заказ предложен курьеру, идет отсчет таймаута.
	DispatchOffered DispatchOutcome = "offered"
	// DispatchZoneUnresolved у заказа нет зоны, автоназначение невозможно.
	DispatchZoneUnresolved DispatchOutcome = "zone_unresolved"
	// DispatchNoCandidate в зоне не осталось подходящих курьеров, заказ сброшен в pending.
	DispatchNoCandidate DispatchOutcome = "no_candidate"
)

func (o DispatchOutcome) String() string {
	return string(o)
}

type DispatchResult struct {
	OrderID   string
	Outcome   DispatchOutcome
	RiderID   int64
	TimeoutAt time.Time
}

// AdvanceOutcome результат продвижения одного заказа из bulk-группы.
type AdvanceOutcome struct {
	OrderID string
	Order   *Order
	Err     error
}

type DispatchEventType string

const (
	EventOffered   DispatchEventType = "offered"
	EventAccepted  DispatchEventType = "accepted"
	EventRejected  DispatchEventType = "rejected"
	EventExpired   DispatchEventType = "expired"
	EventExhausted DispatchEventType = "exhausted"
	EventAdvanced  DispatchEventType = "advanced"
	EventCancelled DispatchEventType = "cancelled"
	EventConfirmed DispatchEventType = "confirmed"
)

func (t DispatchEventType) String() string {
	return string(t)
}

// DispatchEvent уведомление о закоммиченном переходе, уходит во внешнюю шину.
type DispatchEvent struct {
	OrderID    string
	Type       DispatchEventType
	RiderID    *int64
	Status     OrderStatusType
	TimeoutAt  *time.Time
	OccurredAt time.Time
}

// OfferExclusion курьер, которому заказ больше не предлагается в пределах эпохи.
type OfferExclusion struct {
	OrderID   string
	Epoch     int
	RiderID   int64
	Reason    string
	CreatedAt time.Time
}

const (
	ExclusionReasonRejected   = "rejected"
	ExclusionReasonTimeout    = "timeout"
	ExclusionReasonReassigned = "reassigned"
)
