package assignment

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")

	// ErrOrderNotPending: only pending orders enter the assignment flow.
	ErrOrderNotPending = errors.New("order is not pending")

	// ErrOrderAlreadyAssigned guards Assign against double reservation.
	ErrOrderAlreadyAssigned = errors.New("order already has a courier")

	// ErrOrderNotAssigned guards Reassign: there is no courier to replace.
	ErrOrderNotAssigned = errors.New("order has no courier")
)
