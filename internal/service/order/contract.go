//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, filter Filter) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
}

type HistoryRepository interface {
	Append(ctx context.Context, entry entities.StateHistoryEntry) (*entities.StateHistoryEntry, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]entities.StateHistoryEntry, error)
}

// CourierRepository exposes the atomic capacity reservation. The status
// workflow uses it when a transition to "assigned" carries a courier id, so
// capacity bookkeeping has a single path shared with the assignment engine.
type CourierRepository interface {
	Reserve(ctx context.Context, id int64) (*entities.Courier, error)
}

type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Client, error)
}

type ReportService interface {
	GenerateAutomatic(ctx context.Context, order *entities.Order) error
}

type ETAFactory interface {
	EstimateMinutes(zone entities.ZoneType, priority entities.OrderPriorityType) int
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Filter narrows order listings.
type Filter struct {
	Status *entities.OrderStatusType
	Zone   *entities.ZoneType
}
