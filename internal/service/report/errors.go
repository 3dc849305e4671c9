package report

import "errors"

var (
	ErrInvalidReportID = errors.New("invalid report id")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidOutcome  = errors.New("invalid report outcome")

	// ErrInvalidRating: ratings run 1 through 5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrMissingFailureReason: a failed outcome must say why.
	ErrMissingFailureReason = errors.New("failure reason required for failed outcome")

	// ErrOrderNotDelivered: a report documents a finished delivery.
	ErrOrderNotDelivered = errors.New("order is not delivered")

	// ErrReportAlreadyExists: one report per order.
	ErrReportAlreadyExists = errors.New("report already exists for order")

	ErrReportNotFound = errors.New("report not found")
	ErrOrderNotFound  = errors.New("order not found")
)
