package history

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append writes one immutable transition record. ChangedAt is stamped by the
// database so entries for the same order sort consistently.
func (r *Repository) Append(ctx context.Context, entry entities.StateHistoryEntry) (*entities.StateHistoryEntry, error) {
	query := `INSERT INTO state_history (order_id, previous_status, new_status, changed_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, previous_status, new_status, changed_at, changed_by`

	var previousStatus *string
	if entry.PreviousStatus != nil {
		previous := entry.PreviousStatus.String()
		previousStatus = &previous
	}

	var entryDB StateHistoryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.OrderID,
		previousStatus,
		entry.NewStatus.String(),
		entry.ChangedBy,
	).Scan(
		&entryDB.ID,
		&entryDB.OrderID,
		&entryDB.PreviousStatus,
		&entryDB.NewStatus,
		&entryDB.ChangedAt,
		&entryDB.ChangedBy,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected history repository append error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]entities.StateHistoryEntry, error) {
	query := `SELECT id, order_id, previous_status, new_status, changed_at, changed_by
		FROM state_history
		WHERE order_id = $1
		ORDER BY changed_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository get error: %w", err)
	}
	defer rows.Close()

	var entriesDB []StateHistoryDB
	for rows.Next() {
		var entryDB StateHistoryDB
		err = rows.Scan(
			&entryDB.ID,
			&entryDB.OrderID,
			&entryDB.PreviousStatus,
			&entryDB.NewStatus,
			&entryDB.ChangedAt,
			&entryDB.ChangedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository scan error: %w", err)
		}
		entriesDB = append(entriesDB, entryDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository rows error: %w", err)
	}

	return ToDomainList(entriesDB), nil
}
