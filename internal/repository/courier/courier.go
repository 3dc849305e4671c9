package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = "id, national_id, first_name, last_name, phone, vehicle, zone, capacity, available, active"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (national_id, first_name, last_name, phone, vehicle, zone, capacity, available, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, TRUE), COALESCE($9, TRUE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.NationalID,
		courierModifyModel.FirstName,
		courierModifyModel.LastName,
		courierModifyModel.Phone,
		courierModifyModel.Vehicle,
		courierModifyModel.Zone,
		courierModifyModel.Capacity,
		courierModifyModel.Available,
		courierModifyModel.Active,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierDB CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&courierDB.ID,
		&courierDB.NationalID,
		&courierDB.FirstName,
		&courierDB.LastName,
		&courierDB.Phone,
		&courierDB.Vehicle,
		&courierDB.Zone,
		&courierDB.Capacity,
		&courierDB.Available,
		&courierDB.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(&courierDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository get all error: %w", err)
	}
	defer rows.Close()

	couriersDB, err := scanCouriers(rows)
	if err != nil {
		return nil, err
	}

	return ToDomainList(couriersDB), nil
}

// GetAssignable lists active couriers with free capacity, least loaded first.
// The secondary id ordering keeps bulk assignment deterministic when
// capacities tie.
func (r *Repository) GetAssignable(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE active AND available AND capacity > 0
		ORDER BY capacity ASC, id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository get assignable error: %w", err)
	}
	defer rows.Close()

	couriersDB, err := scanCouriers(rows)
	if err != nil {
		return nil, err
	}

	return ToDomainList(couriersDB), nil
}

// Reserve takes one capacity slot with a single conditional update. The
// WHERE clause makes concurrent reservations serialize on the row: whoever
// loses the race sees zero rows and gets ErrCourierUnavailable.
func (r *Repository) Reserve(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET capacity = capacity - 1,
		    available = capacity - 1 > 0
		WHERE id = $1 AND active AND available AND capacity > 0
		RETURNING ` + courierColumns

	var courierDB CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&courierDB.ID,
		&courierDB.NationalID,
		&courierDB.FirstName,
		&courierDB.LastName,
		&courierDB.Phone,
		&courierDB.Vehicle,
		&courierDB.Zone,
		&courierDB.Capacity,
		&courierDB.Available,
		&courierDB.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			checkErr := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM couriers WHERE id = $1)`, id).Scan(&exists)
			if checkErr != nil {
				return nil, fmt.Errorf("unexpected courier repository reserve error: %w", checkErr)
			}
			if !exists {
				return nil, courier.ErrCourierNotFound
			}
			return nil, courier.ErrCourierUnavailable
		}
		return nil, fmt.Errorf("unexpected courier repository reserve error: %w", err)
	}

	return ToDomain(&courierDB), nil
}

// Release gives a capacity slot back and marks the courier available again.
func (r *Repository) Release(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET capacity = capacity + 1,
		    available = TRUE
		WHERE id = $1
		RETURNING ` + courierColumns

	var courierDB CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&courierDB.ID,
		&courierDB.NationalID,
		&courierDB.FirstName,
		&courierDB.LastName,
		&courierDB.Phone,
		&courierDB.Vehicle,
		&courierDB.Zone,
		&courierDB.Capacity,
		&courierDB.Available,
		&courierDB.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository release error: %w", err)
	}

	return ToDomain(&courierDB), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	if courierModifyModel.NationalID != nil {
		builder = builder.Set("national_id", courierModifyModel.NationalID)
	}
	if courierModifyModel.FirstName != nil {
		builder = builder.Set("first_name", courierModifyModel.FirstName)
	}
	if courierModifyModel.LastName != nil {
		builder = builder.Set("last_name", courierModifyModel.LastName)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Vehicle != nil {
		builder = builder.Set("vehicle", courierModifyModel.Vehicle)
	}
	if courierModifyModel.Zone != nil {
		builder = builder.Set("zone", courierModifyModel.Zone)
	}
	if courierModifyModel.Capacity != nil {
		builder = builder.Set("capacity", courierModifyModel.Capacity)
	}
	if courierModifyModel.Available != nil {
		builder = builder.Set("available", courierModifyModel.Available)
	}
	if courierModifyModel.Active != nil {
		builder = builder.Set("active", courierModifyModel.Active)
	}

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierDB CourierDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&courierDB.ID,
		&courierDB.NationalID,
		&courierDB.FirstName,
		&courierDB.LastName,
		&courierDB.Phone,
		&courierDB.Vehicle,
		&courierDB.Zone,
		&courierDB.Capacity,
		&courierDB.Available,
		&courierDB.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM couriers WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

func scanCouriers(rows pgx.Rows) ([]CourierDB, error) {
	var couriersDB []CourierDB
	for rows.Next() {
		var courierDB CourierDB
		err := rows.Scan(
			&courierDB.ID,
			&courierDB.NationalID,
			&courierDB.FirstName,
			&courierDB.LastName,
			&courierDB.Phone,
			&courierDB.Vehicle,
			&courierDB.Zone,
			&courierDB.Capacity,
			&courierDB.Available,
			&courierDB.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository scan error: %w", err)
		}
		couriersDB = append(couriersDB, courierDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository rows error: %w", err)
	}
	return couriersDB, nil
}
