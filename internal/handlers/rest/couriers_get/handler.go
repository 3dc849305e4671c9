package couriers_get

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
	courierEntities, err := h.service.GetCouriers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := make([]dto.Courier, len(courierEntities))
	for i, courierEntity := range courierEntities {
		courierDTOs[i] = dto.Courier{
			ID:         courierEntity.ID,
			NationalID: courierEntity.NationalID,
			FirstName:  courierEntity.FirstName,
			LastName:   courierEntity.LastName,
			Phone:      courierEntity.Phone,
			Vehicle:    courierEntity.Vehicle,
			Zone:       courierEntity.Zone.String(),
			Capacity:   courierEntity.Capacity,
			Available:  courierEntity.Available,
			Active:     courierEntity.Active,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
