package report_post

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
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var reportCreateDTO dto.ReportCreate
	err = json.NewDecoder(r.Body).Decode(&reportCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome := entities.ReportOutcomeType(reportCreateDTO.Outcome)
	reportModifyEntity := entities.DeliveryReportModify{
		OrderID:        &orderID,
		CourierID:      reportCreateDTO.CourierID,
		DepartureTime:  reportCreateDTO.DepartureTime,
		ArrivalTime:    reportCreateDTO.ArrivalTime,
		DeliveryTime:   reportCreateDTO.DeliveryTime,
		TransitMinutes: reportCreateDTO.TransitMinutes,
		TotalMinutes:   reportCreateDTO.TotalMinutes,
		Outcome:        &outcome,
		FailureReason:  reportCreateDTO.FailureReason,
		Rating:         reportCreateDTO.Rating,
		ClientComments: reportCreateDTO.ClientComments,
	}

	reportEntity, err := h.service.CreateManual(r.Context(), reportModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidOrderID),
			errors.Is(err, report.ErrInvalidOutcome),
			errors.Is(err, report.ErrInvalidRating),
			errors.Is(err, report.ErrMissingFailureReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, report.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, report.ErrOrderNotDelivered),
			errors.Is(err, report.ErrReportAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reportDTO := toReportDTO(reportEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
