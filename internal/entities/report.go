package entities

import "time"

type DeliveryReport struct {
	ID             int64
	OrderID        int64
	CourierID      *int64
	ReportDate     time.Time
	DepartureTime  *time.Time
	ArrivalTime    *time.Time
	DeliveryTime   *time.Time
	TransitMinutes *int
	TotalMinutes   *int
	Outcome        ReportOutcomeType
	FailureReason  *string
	Rating         *int
	ClientComments *string
}

type ReportOutcomeType string

const (
	OutcomeSuccessful  ReportOutcomeType = "successful"
	OutcomeFailed      ReportOutcomeType = "failed"
	OutcomeRescheduled ReportOutcomeType = "rescheduled"
)

func (o ReportOutcomeType) String() string {
	return string(o)
}

func (o ReportOutcomeType) IsValid() bool {
	switch o {
	case OutcomeSuccessful, OutcomeFailed, OutcomeRescheduled:
		return true
	default:
		return false
	}
}

type DeliveryReportModify struct {
	ID             *int64
	OrderID        *int64
	CourierID      *int64
	ReportDate     *time.Time
	DepartureTime  *time.Time
	ArrivalTime    *time.Time
	DeliveryTime   *time.Time
	TransitMinutes *int
	TotalMinutes   *int
	Outcome        *ReportOutcomeType
	FailureReason  *string
	Rating         *int
	ClientComments *string
}

// ReportSummary aggregates delivery outcomes for the reporting dashboard.
type ReportSummary struct {
	TotalDeliveries   int64
	Successful        int64
	Failed            int64
	Rescheduled       int64
	AverageRating     float64
	DeliveredNoReport int64
}
