//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_reassign_post_test
package dispatch_reassign_post

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
	Reassign(ctx context.Context, orderID, newCourierID int64) (*entities.Reassignment, error)
}
