package dispatch_events

// dispatchEventMessage тело сообщения в топике событий диспетчера.
type dispatchEventMessage struct {
	EventID    string  `json:"event_id"`
	OrderID    string  `json:"order_id"`
	Type       string  `json:"type"`
	RiderID    *int64  `json:"rider_id,omitempty"`
	Status     string  `json:"status"`
	TimeoutAt  *string `json:"timeout_at,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}
