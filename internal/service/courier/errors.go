package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidNationalID     = errors.New("invalid national id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidZone           = errors.New("invalid zone")
	ErrInvalidCapacity       = errors.New("invalid capacity")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("courier with this national id already exists")

	// ErrCourierUnavailable is returned by the atomic capacity reservation
	// when the courier is inactive, unavailable, or out of capacity.
	ErrCourierUnavailable = errors.New("courier has no capacity available")
)
