package dispatch

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidRiderID    = errors.New("invalid rider id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidBulkID     = errors.New("invalid bulk order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrBulkOrderNotFound = errors.New("bulk order not found")

	ErrAssignmentStale      = errors.New("assignment is stale")
	ErrOrderAlreadyTerminal = errors.New("order already terminal")
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrAlreadyAccepted      = errors.New("order already accepted by a rider")
	ErrOfferOutstanding     = errors.New("order has an outstanding offer")
	ErrCorruptAssignment    = errors.New("corrupt assignment state")
)
