package client_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var clientCreateDTO dto.ClientCreate
	err := json.NewDecoder(r.Body).Decode(&clientCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	zone := entities.ZoneType(clientCreateDTO.Zone)
	clientModifyEntity := entities.ClientModify{
		NationalID: &clientCreateDTO.NationalID,
		FirstName:  &clientCreateDTO.FirstName,
		LastName:   &clientCreateDTO.LastName,
		Phone:      &clientCreateDTO.Phone,
		Address:    &clientCreateDTO.Address,
		Email:      &clientCreateDTO.Email,
		Zone:       &zone,
		Disability: clientCreateDTO.Disability,
	}

	id, err := h.service.CreateClient(r.Context(), clientModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrMissingRequiredFields),
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

	response := dto.ClientCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
