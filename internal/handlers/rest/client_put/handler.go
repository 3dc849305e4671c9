package client_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
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

	var clientUpdateDTO dto.ClientUpdate
	err = json.NewDecoder(r.Body).Decode(&clientUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	clientModifyEntity := entities.ClientModify{
		ID:         &id,
		NationalID: clientUpdateDTO.NationalID,
		FirstName:  clientUpdateDTO.FirstName,
		LastName:   clientUpdateDTO.LastName,
		Phone:      clientUpdateDTO.Phone,
		Address:    clientUpdateDTO.Address,
		Email:      clientUpdateDTO.Email,
		Disability: clientUpdateDTO.Disability,
	}
	if clientUpdateDTO.Zone != nil {
		zone := entities.ZoneType(*clientUpdateDTO.Zone)
		clientModifyEntity.Zone = &zone
	}

	clientEntity, err := h.service.UpdateClient(r.Context(), clientModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrClientNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, client.ErrInvalidClientID),
			errors.Is(err, client.ErrMissingRequiredFields),
			errors.Is(err, client.ErrInvalidNationalID),
			errors.Is(err, client.ErrInvalidName),
			errors.Is(err, client.ErrInvalidPhone),
			errors.Is(err, client.ErrInvalidZone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, client.ErrConflict):
			w.WriteHeader(http.StatusConflict)
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
