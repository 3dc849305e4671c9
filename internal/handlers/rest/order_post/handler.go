package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

const defaultActor = "api"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	zone := entities.ZoneType(orderCreateDTO.DeliveryZone)
	orderModifyEntity := entities.OrderModify{
		ClientID:         &orderCreateDTO.ClientID,
		DeliveryAddress:  &orderCreateDTO.DeliveryAddress,
		DeliveryZone:     &zone,
		EstimatedMinutes: orderCreateDTO.EstimatedMinutes,
		Observations:     orderCreateDTO.Observations,
	}
	if orderCreateDTO.Priority != nil {
		priority := entities.OrderPriorityType(*orderCreateDTO.Priority)
		orderModifyEntity.Priority = &priority
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity, defaultActor)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidPriority),
			errors.Is(err, order.ErrInvalidZone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrClientNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
