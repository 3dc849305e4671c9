package order_put

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

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID:               &id,
		DeliveryAddress:  orderUpdateDTO.DeliveryAddress,
		EstimatedMinutes: orderUpdateDTO.EstimatedMinutes,
		Observations:     orderUpdateDTO.Observations,
	}
	if orderUpdateDTO.Priority != nil {
		priority := entities.OrderPriorityType(*orderUpdateDTO.Priority)
		orderModifyEntity.Priority = &priority
	}
	if orderUpdateDTO.DeliveryZone != nil {
		zone := entities.ZoneType(*orderUpdateDTO.DeliveryZone)
		orderModifyEntity.DeliveryZone = &zone
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidPriority),
			errors.Is(err, order.ErrInvalidZone),
			errors.Is(err, order.ErrStatusImmutable):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
