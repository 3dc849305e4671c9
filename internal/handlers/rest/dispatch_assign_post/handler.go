package dispatch_assign_post

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

const defaultActor = "dispatcher"

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
	var assignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := assignDTO.ChangedBy
	if actor == "" {
		actor = defaultActor
	}

	assignmentEntity, err := h.service.Assign(r.Context(), assignDTO.OrderID, assignDTO.CourierID, actor)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOrderNotPending),
			errors.Is(err, assignment.ErrOrderAlreadyAssigned),
			errors.Is(err, courier.ErrCourierUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignResponse{
		OrderID:         assignmentEntity.OrderID,
		CourierID:       assignmentEntity.CourierID,
		AssignedAt:      assignmentEntity.AssignedAt,
		CourierCapacity: assignmentEntity.Capacity,
		CourierFree:     assignmentEntity.Available,
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
