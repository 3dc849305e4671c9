package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, client_id, courier_id, status, priority, delivery_address, delivery_zone,
		created_at, assigned_at, estimated_delivery_at, delivered_at, estimated_minutes, actual_minutes, observations`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (client_id, status, priority, delivery_address, delivery_zone, estimated_minutes, observations)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, ''))
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ClientID,
		orderModifyModel.Status,
		orderModifyModel.Priority,
		orderModifyModel.DeliveryAddress,
		orderModifyModel.DeliveryZone,
		orderModifyModel.EstimatedMinutes,
		orderModifyModel.Observations,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter order.Filter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Zone != nil {
		builder = builder.Where(sq.Eq{"delivery_zone": filter.Zone.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get all error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get all error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	return ToDomainList(ordersDB), nil
}

// GetPendingUnassigned lists orders waiting for a courier, oldest first. The
// ordering fixes which orders win when courier capacity runs short.
func (r *Repository) GetPendingUnassigned(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = 'pending' AND courier_id IS NULL
		ORDER BY created_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get pending error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	return ToDomainList(ordersDB), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.ClientID != nil {
		builder = builder.Set("client_id", orderModifyModel.ClientID)
	}
	if orderModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", orderModifyModel.CourierID)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.Priority != nil {
		builder = builder.Set("priority", orderModifyModel.Priority)
	}
	if orderModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", orderModifyModel.DeliveryAddress)
	}
	if orderModifyModel.DeliveryZone != nil {
		builder = builder.Set("delivery_zone", orderModifyModel.DeliveryZone)
	}
	if orderModifyModel.AssignedAt != nil {
		builder = builder.Set("assigned_at", orderModifyModel.AssignedAt)
	}
	if orderModifyModel.EstimatedDeliveryAt != nil {
		builder = builder.Set("estimated_delivery_at", orderModifyModel.EstimatedDeliveryAt)
	}
	if orderModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", orderModifyModel.DeliveredAt)
	}
	if orderModifyModel.EstimatedMinutes != nil {
		builder = builder.Set("estimated_minutes", orderModifyModel.EstimatedMinutes)
	}
	if orderModifyModel.ActualMinutes != nil {
		builder = builder.Set("actual_minutes", orderModifyModel.ActualMinutes)
	}
	if orderModifyModel.Observations != nil {
		builder = builder.Set("observations", orderModifyModel.Observations)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.ClientID,
		&orderDB.CourierID,
		&orderDB.Status,
		&orderDB.Priority,
		&orderDB.DeliveryAddress,
		&orderDB.DeliveryZone,
		&orderDB.CreatedAt,
		&orderDB.AssignedAt,
		&orderDB.EstimatedDeliveryAt,
		&orderDB.DeliveredAt,
		&orderDB.EstimatedMinutes,
		&orderDB.ActualMinutes,
		&orderDB.Observations,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

func scanOrders(rows pgx.Rows) ([]OrderDB, error) {
	var ordersDB []OrderDB
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		ordersDB = append(ordersDB, *orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}
	return ordersDB, nil
}
