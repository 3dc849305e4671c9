package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusChangeDTO dto.OrderStatusChange
	err = json.NewDecoder(r.Body).Decode(&statusChangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := statusChangeDTO.ChangedBy
	if actor == "" {
		actor = defaultActor
	}

	orderEntity, err := h.service.ChangeStatus(
		r.Context(),
		id,
		entities.OrderStatusType(statusChangeDTO.Status),
		statusChangeDTO.CourierID,
		actor,
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrCourierRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrIllegalTransition),
			errors.Is(err, courier.ErrCourierUnavailable):
			w.WriteHeader(http.StatusConflict)
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
