//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_assign_pending_post_test
package dispatch_assign_pending_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignAllPending(ctx context.Context, actor string) (int, error)
}
