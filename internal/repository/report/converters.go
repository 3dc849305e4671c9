package report

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryReportDB) *entities.DeliveryReport {
	if d == nil {
		return nil
	}

	return &entities.DeliveryReport{
		ID:             d.ID,
		OrderID:        d.OrderID,
		CourierID:      d.CourierID,
		ReportDate:     d.ReportDate,
		DepartureTime:  d.DepartureTime,
		ArrivalTime:    d.ArrivalTime,
		DeliveryTime:   d.DeliveryTime,
		TransitMinutes: d.TransitMinutes,
		TotalMinutes:   d.TotalMinutes,
		Outcome:        entities.ReportOutcomeType(d.Outcome),
		FailureReason:  d.FailureReason,
		Rating:         d.Rating,
		ClientComments: d.ClientComments,
	}
}

func FromDomainModify(reportModify *entities.DeliveryReportModify) *DeliveryReportModifyDB {
	if reportModify == nil {
		return nil
	}
	reportDB := &DeliveryReportModifyDB{}

	if reportModify.ID != nil {
		reportDB.ID = reportModify.ID
	}
	if reportModify.OrderID != nil {
		reportDB.OrderID = reportModify.OrderID
	}
	if reportModify.CourierID != nil {
		reportDB.CourierID = reportModify.CourierID
	}
	if reportModify.ReportDate != nil {
		reportDB.ReportDate = reportModify.ReportDate
	}
	if reportModify.DepartureTime != nil {
		reportDB.DepartureTime = reportModify.DepartureTime
	}
	if reportModify.ArrivalTime != nil {
		reportDB.ArrivalTime = reportModify.ArrivalTime
	}
	if reportModify.DeliveryTime != nil {
		reportDB.DeliveryTime = reportModify.DeliveryTime
	}
	if reportModify.TransitMinutes != nil {
		reportDB.TransitMinutes = reportModify.TransitMinutes
	}
	if reportModify.TotalMinutes != nil {
		reportDB.TotalMinutes = reportModify.TotalMinutes
	}
	if reportModify.Outcome != nil {
		outcome := reportModify.Outcome.String()
		reportDB.Outcome = &outcome
	}
	if reportModify.FailureReason != nil {
		reportDB.FailureReason = reportModify.FailureReason
	}
	if reportModify.Rating != nil {
		reportDB.Rating = reportModify.Rating
	}
	if reportModify.ClientComments != nil {
		reportDB.ClientComments = reportModify.ClientComments
	}

	return reportDB
}

func ToDomainList(reportsDB []DeliveryReportDB) []entities.DeliveryReport {
	if len(reportsDB) == 0 {
		return []entities.DeliveryReport{}
	}

	result := make([]entities.DeliveryReport, len(reportsDB))
	for i, reportDB := range reportsDB {
		result[i] = *ToDomain(&reportDB)
	}
	return result
}

func ToSummaryDomain(s *SummaryDB) *entities.ReportSummary {
	if s == nil {
		return nil
	}

	summary := &entities.ReportSummary{
		TotalDeliveries:   s.TotalDeliveries,
		Successful:        s.Successful,
		Failed:            s.Failed,
		Rescheduled:       s.Rescheduled,
		DeliveredNoReport: s.DeliveredNoReport,
	}
	if s.AverageRating != nil {
		summary.AverageRating = *s.AverageRating
	}

	return summary
}
