package order

import "time"

type OrderDB struct {
	ID                  int64
	ClientID            int64
	CourierID           *int64
	Status              string
	Priority            string
	DeliveryAddress     string
	DeliveryZone        string
	CreatedAt           time.Time
	AssignedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
	EstimatedMinutes    int
	ActualMinutes       *int
	Observations        string
}

type OrderModifyDB struct {
	ID                  *int64
	ClientID            *int64
	CourierID           *int64
	Status              *string
	Priority            *string
	DeliveryAddress     *string
	DeliveryZone        *string
	AssignedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
	EstimatedMinutes    *int
	ActualMinutes       *int
	Observations        *string
}
