package tracking

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("invalid status")

	ErrOrderNotFound = errors.New("order not found")
)
