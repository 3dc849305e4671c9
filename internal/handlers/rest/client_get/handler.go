package client_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/dto"
	"dispatch/internal/service/client"
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

	clientEntity, err := h.service.GetClient(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrClientNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, client.ErrInvalidClientID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	clientDTO := dto.Client{
		ID:           clientEntity.ID,
		NationalID:   clientEntity.NationalID,
		FirstName:    clientEntity.FirstName,
		LastName:     clientEntity.LastName,
		Phone:        clientEntity.Phone,
		Address:      clientEntity.Address,
		Email:        clientEntity.Email,
		Zone:         clientEntity.Zone.String(),
		Disability:   clientEntity.Disability,
		RegisteredAt: clientEntity.RegisteredAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(clientDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
