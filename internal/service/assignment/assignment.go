package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
)

type Service struct {
	orderRepository   OrderRepository
	courierRepository CourierRepository
	historyRepository HistoryRepository
	txManager         TxManager
}

func New(
	orderRepository OrderRepository,
	courierRepository CourierRepository,
	historyRepository HistoryRepository,
	txManager TxManager,
) *Service {
	return &Service{
		orderRepository:   orderRepository,
		courierRepository: courierRepository,
		historyRepository: historyRepository,
		txManager:         txManager,
	}
}

// Assign binds a courier to a pending order. The courier's capacity is
// reserved with a single conditional update inside the transaction, so a
// courier at zero capacity fails the whole assignment and the order stays
// pending.
func (s *Service) Assign(ctx context.Context, orderID, courierID int64, actor string) (*entities.Assignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var assigned *entities.Assignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Status != entities.OrderPending {
			return ErrOrderNotPending
		}
		if order.CourierID != nil {
			return ErrOrderAlreadyAssigned
		}

		reserved, err := s.courierRepository.Reserve(ctx, courierID)
		if err != nil {
			return fmt.Errorf("reserve courier: %w", err)
		}

		now := time.Now().UTC()
		status := entities.OrderAssigned
		_, err = s.orderRepository.Update(ctx, entities.OrderModify{
			ID:         &orderID,
			CourierID:  &reserved.ID,
			Status:     &status,
			AssignedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		previous := entities.OrderPending
		_, err = s.historyRepository.Append(ctx, entities.StateHistoryEntry{
			OrderID:        orderID,
			PreviousStatus: &previous,
			NewStatus:      entities.OrderAssigned,
			ChangedBy:      actor,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		assigned = &entities.Assignment{
			OrderID:    orderID,
			CourierID:  reserved.ID,
			AssignedAt: now,
			Capacity:   reserved.Capacity,
			Available:  reserved.Available,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// Reassign swaps the courier on an already assigned order. The previous
// courier gets their capacity slot back; the order's status does not change,
// so no history entry is written.
func (s *Service) Reassign(ctx context.Context, orderID, newCourierID int64) (*entities.Reassignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if newCourierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var reassigned *entities.Reassignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.CourierID == nil || order.Status.IsTerminal() {
			return ErrOrderNotAssigned
		}
		previousCourierID := *order.CourierID

		reserved, err := s.courierRepository.Reserve(ctx, newCourierID)
		if err != nil {
			return fmt.Errorf("reserve courier: %w", err)
		}

		if _, err := s.courierRepository.Release(ctx, previousCourierID); err != nil {
			return fmt.Errorf("release courier: %w", err)
		}

		now := time.Now().UTC()
		_, err = s.orderRepository.Update(ctx, entities.OrderModify{
			ID:         &orderID,
			CourierID:  &reserved.ID,
			AssignedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		reassigned = &entities.Reassignment{
			OrderID:           orderID,
			PreviousCourierID: previousCourierID,
			NewCourierID:      reserved.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reassigned, nil
}

// AssignAllPending walks pending unassigned orders oldest first and offers
// each one to the assignable couriers ordered by remaining capacity, least
// loaded first. Every successful match is persisted in its own transaction,
// so a failure midway keeps the assignments already made. Returns the number
// of orders assigned.
func (s *Service) AssignAllPending(ctx context.Context, actor string) (int, error) {
	orders, err := s.orderRepository.GetPendingUnassigned(ctx)
	if err != nil {
		return 0, fmt.Errorf("get pending orders: %w", err)
	}
	if len(orders) == 0 {
		return 0, nil
	}

	couriers, err := s.courierRepository.GetAssignable(ctx)
	if err != nil {
		return 0, fmt.Errorf("get assignable couriers: %w", err)
	}

	remaining := make([]int, len(couriers))
	for i, c := range couriers {
		remaining[i] = c.Capacity
	}

	assigned := 0
	for _, order := range orders {
		for i := range couriers {
			if remaining[i] <= 0 {
				continue
			}

			_, err := s.Assign(ctx, order.ID, couriers[i].ID, actor)
			if err != nil {
				if errors.Is(err, courier.ErrCourierUnavailable) {
					// The snapshot is stale, someone else took the slot.
					remaining[i] = 0
					continue
				}
				return assigned, fmt.Errorf("assign order %d: %w", order.ID, err)
			}

			remaining[i]--
			assigned++
			break
		}
	}

	return assigned, nil
}
