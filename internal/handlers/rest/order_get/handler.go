package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	return dto.Order{
		ID:                  orderEntity.ID,
		ClientID:            orderEntity.ClientID,
		CourierID:           orderEntity.CourierID,
		Status:              orderEntity.Status.String(),
		Priority:            orderEntity.Priority.String(),
		DeliveryAddress:     orderEntity.DeliveryAddress,
		DeliveryZone:        orderEntity.DeliveryZone.String(),
		CreatedAt:           orderEntity.CreatedAt,
		AssignedAt:          orderEntity.AssignedAt,
		EstimatedDeliveryAt: orderEntity.EstimatedDeliveryAt,
		DeliveredAt:         orderEntity.DeliveredAt,
		EstimatedMinutes:    orderEntity.EstimatedMinutes,
		ActualMinutes:       orderEntity.ActualMinutes,
		Observations:        orderEntity.Observations,
	}
}
