//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_put_test
package client_put

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
	UpdateClient(ctx context.Context, clientModifyEntity entities.ClientModify) (*entities.Client, error)
}
