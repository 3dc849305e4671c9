package history

import "time"

type StateHistoryDB struct {
	ID             int64
	OrderID        int64
	PreviousStatus *string
	NewStatus      string
	ChangedAt      time.Time
	ChangedBy      string
}
