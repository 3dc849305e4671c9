//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_test
package client

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, clientModifyEntity entities.ClientModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, clientModifyEntity entities.ClientModify) (*entities.Client, error)
	Delete(ctx context.Context, id int64) error
}
