//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetPendingUnassigned(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}

// CourierRepository reserves and releases delivery capacity. Reserve is the
// single conditional write that both decrements capacity and flips
// availability, so two concurrent assignments can never oversell a courier.
type CourierRepository interface {
	Reserve(ctx context.Context, id int64) (*entities.Courier, error)
	Release(ctx context.Context, id int64) (*entities.Courier, error)
	GetAssignable(ctx context.Context) ([]entities.Courier, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry entities.StateHistoryEntry) (*entities.StateHistoryEntry, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
