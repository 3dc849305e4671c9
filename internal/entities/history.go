package entities

import "time"

// StateHistoryEntry is an immutable audit record of one order status
// transition. PreviousStatus is nil only for the entry written at order
// creation.
type StateHistoryEntry struct {
	ID             int64
	OrderID        int64
	PreviousStatus *OrderStatusType
	NewStatus      OrderStatusType
	ChangedAt      time.Time
	ChangedBy      string
}
