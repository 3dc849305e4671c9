package client

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/client"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, clientModifyEntity entities.ClientModify) (int64, error) {
	clientModifyModel := FromDomainModify(&clientModifyEntity)
	query := `INSERT INTO clients (national_id, first_name, last_name, phone, address, email, zone, disability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, FALSE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		clientModifyModel.NationalID,
		clientModifyModel.FirstName,
		clientModifyModel.LastName,
		clientModifyModel.Phone,
		clientModifyModel.Address,
		clientModifyModel.Email,
		clientModifyModel.Zone,
		clientModifyModel.Disability,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, client.ErrConflict
		}
		return 0, fmt.Errorf("unexpected client repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	query := `SELECT id, national_id, first_name, last_name, phone, address, email, zone, disability, registered_at
		FROM clients
		WHERE id = $1`

	var clientDB ClientDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&clientDB.ID,
		&clientDB.NationalID,
		&clientDB.FirstName,
		&clientDB.LastName,
		&clientDB.Phone,
		&clientDB.Address,
		&clientDB.Email,
		&clientDB.Zone,
		&clientDB.Disability,
		&clientDB.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected client repository get error: %w", err)
	}

	return ToDomain(&clientDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Client, error) {
	query := `SELECT id, national_id, first_name, last_name, phone, address, email, zone, disability, registered_at
		FROM clients
		ORDER BY id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository get all error: %w", err)
	}
	defer rows.Close()

	var clientsDB []ClientDB
	for rows.Next() {
		var clientDB ClientDB
		err = rows.Scan(
			&clientDB.ID,
			&clientDB.NationalID,
			&clientDB.FirstName,
			&clientDB.LastName,
			&clientDB.Phone,
			&clientDB.Address,
			&clientDB.Email,
			&clientDB.Zone,
			&clientDB.Disability,
			&clientDB.RegisteredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected client repository scan error: %w", err)
		}
		clientsDB = append(clientsDB, clientDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected client repository rows error: %w", err)
	}

	return ToDomainList(clientsDB), nil
}

func (r *Repository) Update(ctx context.Context, clientModifyEntity entities.ClientModify) (*entities.Client, error) {
	clientModifyModel := FromDomainModify(&clientModifyEntity)

	builder := qb.
		Update("clients")

	if clientModifyModel.NationalID != nil {
		builder = builder.Set("national_id", clientModifyModel.NationalID)
	}
	if clientModifyModel.FirstName != nil {
		builder = builder.Set("first_name", clientModifyModel.FirstName)
	}
	if clientModifyModel.LastName != nil {
		builder = builder.Set("last_name", clientModifyModel.LastName)
	}
	if clientModifyModel.Phone != nil {
		builder = builder.Set("phone", clientModifyModel.Phone)
	}
	if clientModifyModel.Address != nil {
		builder = builder.Set("address", clientModifyModel.Address)
	}
	if clientModifyModel.Email != nil {
		builder = builder.Set("email", clientModifyModel.Email)
	}
	if clientModifyModel.Zone != nil {
		builder = builder.Set("zone", clientModifyModel.Zone)
	}
	if clientModifyModel.Disability != nil {
		builder = builder.Set("disability", clientModifyModel.Disability)
	}

	builder = builder.
		Where(sq.Eq{"id": clientModifyModel.ID}).
		Suffix("RETURNING id, national_id, first_name, last_name, phone, address, email, zone, disability, registered_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository update error: %w", err)
	}

	var clientDB ClientDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&clientDB.ID,
		&clientDB.NationalID,
		&clientDB.FirstName,
		&clientDB.LastName,
		&clientDB.Phone,
		&clientDB.Address,
		&clientDB.Email,
		&clientDB.Zone,
		&clientDB.Disability,
		&clientDB.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, client.ErrConflict
		}
		return nil, fmt.Errorf("unexpected client repository update error: %w", err)
	}

	return ToDomain(&clientDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected client repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}
