package dispatch_assign_pending_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/dto"
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
	assigned, err := h.service.AssignAllPending(r.Context(), defaultActor)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("assigned", assigned),
		).Error("bulk assignment failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.AssignPendingResponse{
		Assigned: assigned,
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
