package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/client"
)

type Service struct {
	repository        Repository
	historyRepository HistoryRepository
	courierRepository CourierRepository
	clientRepository  ClientRepository
	reportService     ReportService
	etaFactory        ETAFactory
	txManager         TxManager
}

func New(
	repository Repository,
	historyRepository HistoryRepository,
	courierRepository CourierRepository,
	clientRepository ClientRepository,
	reportService ReportService,
	etaFactory ETAFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:        repository,
		historyRepository: historyRepository,
		courierRepository: courierRepository,
		clientRepository:  clientRepository,
		reportService:     reportService,
		etaFactory:        etaFactory,
		txManager:         txManager,
	}
}

// CreateOrder registers a pending order and its initial history entry.
// EstimatedMinutes falls back to the zone/priority estimate when the caller
// does not supply one.
func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify, actor string) (*entities.Order, error) {
	if orderModify.ClientID == nil ||
		orderModify.DeliveryAddress == nil ||
		orderModify.DeliveryZone == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidAddress(*orderModify.DeliveryAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !orderModify.DeliveryZone.IsValid() {
		return nil, ErrInvalidZone
	}

	if orderModify.Priority == nil {
		priority := entities.DefaultPriorityType
		orderModify.Priority = &priority
	}
	if !orderModify.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if orderModify.EstimatedMinutes == nil || *orderModify.EstimatedMinutes <= 0 {
		estimated := s.etaFactory.EstimateMinutes(*orderModify.DeliveryZone, *orderModify.Priority)
		orderModify.EstimatedMinutes = &estimated
	}

	status := entities.OrderPending
	orderModify.Status = &status

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.clientRepository.GetByID(ctx, *orderModify.ClientID); err != nil {
			if errors.Is(err, client.ErrClientNotFound) {
				return fmt.Errorf("verify client: %w", ErrClientNotFound)
			}
			return fmt.Errorf("verify client: %w", err)
		}

		order, err := s.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		_, err = s.historyRepository.Append(ctx, entities.StateHistoryEntry{
			OrderID:   order.ID,
			NewStatus: entities.OrderPending,
			ChangedBy: actor,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ChangeStatus moves an order along the status state machine, appending one
// history entry per transition. A transition to "assigned" with a courier id
// reserves that courier's capacity atomically; a transition to "delivered"
// stamps the delivery time once and triggers automatic report generation.
func (s *Service) ChangeStatus(ctx context.Context, orderID int64, newStatus entities.OrderStatusType, courierID *int64, actor string) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, newStatus)
		}

		now := time.Now().UTC()
		orderModify := entities.OrderModify{
			ID:     &orderID,
			Status: &newStatus,
		}

		switch newStatus {
		case entities.OrderAssigned:
			if courierID != nil {
				courier, err := s.courierRepository.Reserve(ctx, *courierID)
				if err != nil {
					return fmt.Errorf("reserve courier: %w", err)
				}
				orderModify.CourierID = &courier.ID
			} else if order.CourierID == nil {
				return ErrCourierRequired
			}
			if order.AssignedAt == nil {
				orderModify.AssignedAt = &now
			}

		case entities.OrderDelivered:
			if order.DeliveredAt == nil {
				orderModify.DeliveredAt = &now
				actualMinutes := int(now.Sub(order.CreatedAt).Minutes())
				orderModify.ActualMinutes = &actualMinutes
			}
		}

		updated, err = s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		previous := order.Status
		_, err = s.historyRepository.Append(ctx, entities.StateHistoryEntry{
			OrderID:        orderID,
			PreviousStatus: &previous,
			NewStatus:      newStatus,
			ChangedBy:      actor,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if newStatus == entities.OrderDelivered {
			if err := s.reportService.GenerateAutomatic(ctx, updated); err != nil {
				return fmt.Errorf("generate delivery report: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, filter Filter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.Zone != nil && !filter.Zone.IsValid() {
		return nil, ErrInvalidZone
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder edits order attributes. Status is excluded: the status
// workflow is the only mutation path, so every transition is validated and
// history-logged.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || *orderModify.ID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if orderModify.Status != nil {
		return nil, ErrStatusImmutable
	}
	if orderModify.DeliveryZone != nil && !orderModify.DeliveryZone.IsValid() {
		return nil, ErrInvalidZone
	}
	if orderModify.Priority != nil && !orderModify.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	order, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (s *Service) GetHistory(ctx context.Context, orderID int64) ([]entities.StateHistoryEntry, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	if _, err := s.repository.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	entries, err := s.historyRepository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return entries, nil
}
