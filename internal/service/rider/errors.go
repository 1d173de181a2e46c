package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidZoneID         = errors.New("invalid zone id")

	ErrRiderNotFound    = errors.New("rider not found")
	ErrZoneNotFound     = errors.New("zone not found")
	ErrConflict         = errors.New("resource already exists")
	ErrNoCandidateRider = errors.New("no candidate rider in zone")
)
