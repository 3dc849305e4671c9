package entities

import "time"

type Order struct {
	ID                  int64
	ClientID            int64
	CourierID           *int64
	Status              OrderStatusType
	Priority            OrderPriorityType
	DeliveryAddress     string
	DeliveryZone        ZoneType
	CreatedAt           time.Time
	AssignedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
	EstimatedMinutes    int
	ActualMinutes       *int
	Observations        string
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAssigned  OrderStatusType = "assigned"
	OrderEnRoute   OrderStatusType = "en_route"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderEnRoute, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo encodes the legal status edges:
// pending -> assigned -> en_route -> delivered, and any non-terminal -> cancelled.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	if !next.IsValid() {
		return false
	}
	if next == OrderCancelled {
		return !s.IsTerminal()
	}

	switch s {
	case OrderPending:
		return next == OrderAssigned
	case OrderAssigned:
		return next == OrderEnRoute
	case OrderEnRoute:
		return next == OrderDelivered
	default:
		return false
	}
}

type OrderPriorityType string

const (
	PriorityNormal OrderPriorityType = "normal"
	PriorityHigh   OrderPriorityType = "high"
	PriorityUrgent OrderPriorityType = "urgent"
)

const DefaultPriorityType = PriorityNormal

func (p OrderPriorityType) String() string {
	return string(p)
}

func (p OrderPriorityType) IsValid() bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

type OrderModify struct {
	ID                  *int64
	ClientID            *int64
	CourierID           *int64
	Status              *OrderStatusType
	Priority            *OrderPriorityType
	DeliveryAddress     *string
	DeliveryZone        *ZoneType
	AssignedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
	EstimatedMinutes    *int
	ActualMinutes       *int
	Observations        *string
}
