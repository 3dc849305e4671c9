package entities

import "time"

// Assignment is the outcome of binding a courier to an order. Capacity and
// Available reflect the courier after the reservation.
type Assignment struct {
	OrderID    int64
	CourierID  int64
	AssignedAt time.Time
	Capacity   int
	Available  bool
}

type Reassignment struct {
	OrderID           int64
	PreviousCourierID int64
	NewCourierID      int64
}
