package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidPriority       = errors.New("invalid order priority")
	ErrInvalidZone           = errors.New("invalid zone")

	ErrOrderNotFound  = errors.New("order not found")
	ErrClientNotFound = errors.New("client not found")

	// ErrIllegalTransition rejects status edges outside
	// pending -> assigned -> en_route -> delivered, any non-terminal -> cancelled.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrCourierRequired: an order cannot enter "assigned" without a courier.
	ErrCourierRequired = errors.New("courier required for assignment")

	// ErrStatusImmutable: direct edits must not change status, the status
	// workflow is the only mutation path that logs history.
	ErrStatusImmutable = errors.New("status cannot be changed via order edit")
)
