package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var filter order.Filter
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := entities.OrderStatusType(statusParam)
		filter.Status = &status
	}
	if zoneParam := r.URL.Query().Get("zone"); zoneParam != "" {
		zone := entities.ZoneType(zoneParam)
		filter.Zone = &zone
	}

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidZone):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i] = dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
