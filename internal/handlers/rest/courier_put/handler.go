package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
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

	var courierUpdateDTO dto.CourierUpdate
	err = json.NewDecoder(r.Body).Decode(&courierUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		ID:         &id,
		NationalID: courierUpdateDTO.NationalID,
		FirstName:  courierUpdateDTO.FirstName,
		LastName:   courierUpdateDTO.LastName,
		Phone:      courierUpdateDTO.Phone,
		Vehicle:    courierUpdateDTO.Vehicle,
		Capacity:   courierUpdateDTO.Capacity,
		Available:  courierUpdateDTO.Available,
		Active:     courierUpdateDTO.Active,
	}
	if courierUpdateDTO.Zone != nil {
		zone := entities.ZoneType(*courierUpdateDTO.Zone)
		courierModifyEntity.Zone = &zone
	}

	courierEntity, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidNationalID),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidZone),
			errors.Is(err, courier.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTO := dto.Courier{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
