//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_post_test
package report_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateManual(ctx context.Context, reportModifyEntity entities.DeliveryReportModify) (*entities.DeliveryReport, error)
}
