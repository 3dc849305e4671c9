//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reportModifyEntity entities.DeliveryReportModify) (*entities.DeliveryReport, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryReport, error)
	GetByOrderID(ctx context.Context, orderID int64) (*entities.DeliveryReport, error)
	GetAll(ctx context.Context, filter Filter) ([]entities.DeliveryReport, error)
	Update(ctx context.Context, reportModifyEntity entities.DeliveryReportModify) (*entities.DeliveryReport, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*entities.ReportSummary, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Filter narrows report listings.
type Filter struct {
	Outcome   *entities.ReportOutcomeType
	CourierID *int64
}
