package tracking

import (
	"dispatch/internal/entities"
)

func ToDomain(e *TrackingEventDB) entities.TrackingEvent {
	return entities.TrackingEvent{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Status:    entities.OrderStatusType(e.Status),
		Note:      e.Note,
		CreatedAt: e.CreatedAt.UTC(),
	}
}

func ToDomainList(eventsDB []TrackingEventDB) []entities.TrackingEvent {
	result := make([]entities.TrackingEvent, len(eventsDB))
	for i := range eventsDB {
		result[i] = ToDomain(&eventsDB[i])
	}
	return result
}
