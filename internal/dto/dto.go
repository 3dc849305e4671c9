// Package dto holds the JSON request and response shapes of the REST API.
package dto

import "time"

type ClientCreate struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Email      string `json:"email,omitempty"`
	Zone       string `json:"zone"`
	Disability *bool  `json:"disability,omitempty"`
}

type ClientCreateResponse struct {
	ID int64 `json:"id"`
}

type ClientUpdate struct {
	NationalID *string `json:"national_id,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Email      *string `json:"email,omitempty"`
	Zone       *string `json:"zone,omitempty"`
	Disability *bool   `json:"disability,omitempty"`
}

type Client struct {
	ID           int64     `json:"id"`
	NationalID   string    `json:"national_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	Zone         string    `json:"zone"`
	Disability   bool      `json:"disability"`
	RegisteredAt time.Time `json:"registered_at"`
}

type CourierCreate struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Vehicle    string `json:"vehicle"`
	Zone       string `json:"zone"`
	Capacity   *int   `json:"capacity,omitempty"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	NationalID *string `json:"national_id,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Vehicle    *string `json:"vehicle,omitempty"`
	Zone       *string `json:"zone,omitempty"`
	Capacity   *int    `json:"capacity,omitempty"`
	Available  *bool   `json:"available,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

type Courier struct {
	ID         int64  `json:"id"`
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Vehicle    string `json:"vehicle"`
	Zone       string `json:"zone"`
	Capacity   int    `json:"capacity"`
	Available  bool   `json:"available"`
	Active     bool   `json:"active"`
}

type OrderCreate struct {
	ClientID         int64   `json:"client_id"`
	DeliveryAddress  string  `json:"delivery_address"`
	DeliveryZone     string  `json:"delivery_zone"`
	Priority         *string `json:"priority,omitempty"`
	EstimatedMinutes *int    `json:"estimated_minutes,omitempty"`
	Observations     *string `json:"observations,omitempty"`
}

type OrderUpdate struct {
	Priority         *string `json:"priority,omitempty"`
	DeliveryAddress  *string `json:"delivery_address,omitempty"`
	DeliveryZone     *string `json:"delivery_zone,omitempty"`
	EstimatedMinutes *int    `json:"estimated_minutes,omitempty"`
	Observations     *string `json:"observations,omitempty"`
}

type Order struct {
	ID                  int64      `json:"id"`
	ClientID            int64      `json:"client_id"`
	CourierID           *int64     `json:"courier_id,omitempty"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	DeliveryAddress     string     `json:"delivery_address"`
	DeliveryZone        string     `json:"delivery_zone"`
	CreatedAt           time.Time  `json:"created_at"`
	AssignedAt          *time.Time `json:"assigned_at,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
	EstimatedMinutes    int        `json:"estimated_minutes"`
	ActualMinutes       *int       `json:"actual_minutes,omitempty"`
	Observations        string     `json:"observations"`
}

type OrderStatusChange struct {
	Status    string `json:"status"`
	CourierID *int64 `json:"courier_id,omitempty"`
	ChangedBy string `json:"changed_by,omitempty"`
}

type StateHistoryEntry struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	PreviousStatus *string   `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	ChangedAt      time.Time `json:"changed_at"`
	ChangedBy      string    `json:"changed_by"`
}

type AssignRequest struct {
	OrderID   int64  `json:"order_id"`
	CourierID int64  `json:"courier_id"`
	ChangedBy string `json:"changed_by,omitempty"`
}

type AssignResponse struct {
	OrderID         int64     `json:"order_id"`
	CourierID       int64     `json:"courier_id"`
	AssignedAt      time.Time `json:"assigned_at"`
	CourierCapacity int       `json:"courier_capacity"`
	CourierFree     bool      `json:"courier_available"`
}

type ReassignRequest struct {
	OrderID   int64 `json:"order_id"`
	CourierID int64 `json:"courier_id"`
}

type ReassignResponse struct {
	OrderID           int64 `json:"order_id"`
	PreviousCourierID int64 `json:"previous_courier_id"`
	NewCourierID      int64 `json:"new_courier_id"`
}

type AssignPendingResponse struct {
	Assigned int `json:"assigned"`
}

type ReportCreate struct {
	CourierID      *int64     `json:"courier_id,omitempty"`
	DepartureTime  *time.Time `json:"departure_time,omitempty"`
	ArrivalTime    *time.Time `json:"arrival_time,omitempty"`
	DeliveryTime   *time.Time `json:"delivery_time,omitempty"`
	TransitMinutes *int       `json:"transit_minutes,omitempty"`
	TotalMinutes   *int       `json:"total_minutes,omitempty"`
	Outcome        string     `json:"outcome"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	ClientComments *string    `json:"client_comments,omitempty"`
}

type ReportUpdate struct {
	DepartureTime  *time.Time `json:"departure_time,omitempty"`
	ArrivalTime    *time.Time `json:"arrival_time,omitempty"`
	DeliveryTime   *time.Time `json:"delivery_time,omitempty"`
	TransitMinutes *int       `json:"transit_minutes,omitempty"`
	TotalMinutes   *int       `json:"total_minutes,omitempty"`
	Outcome        *string    `json:"outcome,omitempty"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	ClientComments *string    `json:"client_comments,omitempty"`
}

type Report struct {
	ID             int64      `json:"id"`
	OrderID        int64      `json:"order_id"`
	CourierID      *int64     `json:"courier_id,omitempty"`
	ReportDate     time.Time  `json:"report_date"`
	DepartureTime  *time.Time `json:"departure_time,omitempty"`
	ArrivalTime    *time.Time `json:"arrival_time,omitempty"`
	DeliveryTime   *time.Time `json:"delivery_time,omitempty"`
	TransitMinutes *int       `json:"transit_minutes,omitempty"`
	TotalMinutes   *int       `json:"total_minutes,omitempty"`
	Outcome        string     `json:"outcome"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	ClientComments *string    `json:"client_comments,omitempty"`
}

type ReportSummary struct {
	TotalDeliveries   int64   `json:"total_deliveries"`
	Successful        int64   `json:"successful"`
	Failed            int64   `json:"failed"`
	Rescheduled       int64   `json:"rescheduled"`
	AverageRating     float64 `json:"average_rating"`
	DeliveredNoReport int64   `json:"delivered_without_report"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
