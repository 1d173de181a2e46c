package order_status_changed

// orderEvent сообщение платформы заказов о смене статуса.
type orderEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
