package report_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reportEntity, err := h.service.GetReport(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrReportNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, report.ErrInvalidReportID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reportDTO := toReportDTO(reportEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reportDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toReportDTO(reportEntity *entities.DeliveryReport) dto.Report {
	return dto.Report{
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
