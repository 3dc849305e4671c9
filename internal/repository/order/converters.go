package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                  o.ID,
		ClientID:            o.ClientID,
		CourierID:           o.CourierID,
		Status:              entities.OrderStatusType(o.Status),
		Priority:            entities.OrderPriorityType(o.Priority),
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryZone:        entities.ZoneType(o.DeliveryZone),
		CreatedAt:           o.CreatedAt,
		AssignedAt:          o.AssignedAt,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		DeliveredAt:         o.DeliveredAt,
		EstimatedMinutes:    o.EstimatedMinutes,
		ActualMinutes:       o.ActualMinutes,
		Observations:        o.Observations,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.ClientID != nil {
		orderDB.ClientID = orderModify.ClientID
	}
	if orderModify.CourierID != nil {
		orderDB.CourierID = orderModify.CourierID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.Priority != nil {
		priority := orderModify.Priority.String()
		orderDB.Priority = &priority
	}
	if orderModify.DeliveryAddress != nil {
		orderDB.DeliveryAddress = orderModify.DeliveryAddress
	}
	if orderModify.DeliveryZone != nil {
		zone := orderModify.DeliveryZone.String()
		orderDB.DeliveryZone = &zone
	}
	if orderModify.AssignedAt != nil {
		orderDB.AssignedAt = orderModify.AssignedAt
	}
	if orderModify.EstimatedDeliveryAt != nil {
		orderDB.EstimatedDeliveryAt = orderModify.EstimatedDeliveryAt
	}
	if orderModify.DeliveredAt != nil {
		orderDB.DeliveredAt = orderModify.DeliveredAt
	}
	if orderModify.EstimatedMinutes != nil {
		orderDB.EstimatedMinutes = orderModify.EstimatedMinutes
	}
	if orderModify.ActualMinutes != nil {
		orderDB.ActualMinutes = orderModify.ActualMinutes
	}
	if orderModify.Observations != nil {
		orderDB.Observations = orderModify.Observations
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
