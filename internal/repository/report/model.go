package report

import "time"

type DeliveryReportDB struct {
	ID             int64
	OrderID        int64
	CourierID      *int64
	ReportDate     time.Time
	DepartureTime  *time.Time
	ArrivalTime    *time.Time
	DeliveryTime   *time.Time
	TransitMinutes *int
	TotalMinutes   *int
	Outcome        string
	FailureReason  *string
	Rating         *int
	ClientComments *string
}

type DeliveryReportModifyDB struct {
	ID             *int64
	OrderID        *int64
	CourierID      *int64
	ReportDate     *time.Time
	DepartureTime  *time.Time
	ArrivalTime    *time.Time
	DeliveryTime   *time.Time
	TransitMinutes *int
	TotalMinutes   *int
	Outcome        *string
	FailureReason  *string
	Rating         *int
	ClientComments *string
}

type SummaryDB struct {
	TotalDeliveries   int64
	Successful        int64
	Failed            int64
	Rescheduled       int64
	AverageRating     *float64
	DeliveredNoReport int64
}
