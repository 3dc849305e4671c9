package clients_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/dto"
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
	clientEntities, err := h.service.GetClients(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	clientDTOs := make([]dto.Client, len(clientEntities))
	for i, clientEntity := range clientEntities {
		clientDTOs[i] = dto.Client{
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
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(clientDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
