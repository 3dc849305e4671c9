package dispatch_reassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/service/assignment"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/order"
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
	var reassignDTO dto.ReassignRequest
	err := json.NewDecoder(r.Body).Decode(&reassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reassignment, err := h.service.Reassign(r.Context(), reassignDTO.OrderID, reassignDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOrderNotAssigned),
			errors.Is(err, courier.ErrCourierUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ReassignResponse{
		OrderID:           reassignment.OrderID,
		PreviousCourierID: reassignment.PreviousCourierID,
		NewCourierID:      reassignment.NewCourierID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
