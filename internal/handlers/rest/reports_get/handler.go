package reports_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/report"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter report.Filter
	if outcomeParam := r.URL.Query().Get("outcome"); outcomeParam != "" {
		outcome := entities.ReportOutcomeType(outcomeParam)
		filter.Outcome = &outcome
	}
	if courierParam := r.URL.Query().Get("courier_id"); courierParam != "" {
		courierID, err := strconv.ParseInt(courierParam, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.CourierID = &courierID
	}

	reportEntities, err := h.service.GetReports(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidOutcome):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reportDTOs := make([]dto.Report, len(reportEntities))
	for i, reportEntity := range reportEntities {
		reportDTOs[i] = dto.Report{
			ID:             reportEntity.ID,
			OrderID:        reportEntity.OrderID,
			CourierID:      reportEntity.CourierID,
			ReportDate:     reportEntity.ReportDate,
			DepartureTime:  reportEntity.DepartureTime,
			ArrivalTime:    reportEntity.ArrivalTime,
			DeliveryTime:   reportEntity.DeliveryTime,
			TransitMinutes: reportEntity.TransitMinutes,
			TotalMinutes:   reportEntity.TotalMinutes,
			Outcome:        reportEntity.Outcome.String(),
			FailureReason:  reportEntity.FailureReason,
			Rating:         reportEntity.Rating,
			ClientComments: reportEntity.ClientComments,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reportDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
