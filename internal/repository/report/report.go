package report

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/report"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const reportColumns = `id, order_id, courier_id, report_date, departure_time, arrival_time, delivery_time,
		transit_minutes, total_minutes, outcome, failure_reason, rating, client_comments`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reportModifyEntity entities.DeliveryReportModify) (*entities.DeliveryReport, error) {
	reportModifyModel := FromDomainModify(&reportModifyEntity)
	query := `INSERT INTO delivery_reports
		(order_id, courier_id, report_date, departure_time, arrival_time, delivery_time,
		 transit_minutes, total_minutes, outcome, failure_reason, rating, client_comments)
		VALUES ($1, $2, COALESCE($3, NOW()), $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + reportColumns

	reportDB, err := scanReport(r.querier.QueryRow(
		ctx,
		query,
		reportModifyModel.OrderID,
		reportModifyModel.CourierID,
		reportModifyModel.ReportDate,
		reportModifyModel.DepartureTime,
		reportModifyModel.ArrivalTime,
		reportModifyModel.DeliveryTime,
		reportModifyModel.TransitMinutes,
		reportModifyModel.TotalMinutes,
		reportModifyModel.Outcome,
		reportModifyModel.FailureReason,
		reportModifyModel.Rating,
		reportModifyModel.ClientComments,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, report.ErrReportAlreadyExists
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, report.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected report repository create error: %w", err)
	}

	return ToDomain(reportDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryReport, error) {
	query := `SELECT ` + reportColumns + `
		FROM delivery_reports
		WHERE id = $1`

	reportDB, err := scanReport(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}
		return nil, fmt.Errorf("unexpected report repository get error: %w", err)
	}

	return ToDomain(reportDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.DeliveryReport, error) {
	query := `SELECT ` + reportColumns + `
		FROM delivery_reports
		WHERE order_id = $1`

	reportDB, err := scanReport(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}
		return nil, fmt.Errorf("unexpected report repository get by order error: %w", err)
	}

	return ToDomain(reportDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter report.Filter) ([]entities.DeliveryReport, error) {
	builder := qb.
		Select(reportColumns).
		From("delivery_reports").
		OrderBy("report_date DESC", "id DESC")

	if filter.Outcome != nil {
		builder = builder.Where(sq.Eq{"outcome": filter.Outcome.String()})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": filter.CourierID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository get all error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository get all error: %w", err)
	}
	defer rows.Close()

	var reportsDB []DeliveryReportDB
	for rows.Next() {
		reportDB, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected report repository scan error: %w", err)
		}
		reportsDB = append(reportsDB, *reportDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected report repository rows error: %w", err)
	}

	return ToDomainList(reportsDB), nil
}

func (r *Repository) Update(ctx context.Context, reportModifyEntity entities.DeliveryReportModify) (*entities.DeliveryReport, error) {
	reportModifyModel := FromDomainModify(&reportModifyEntity)

	builder := qb.
		Update("delivery_reports")

	if reportModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", reportModifyModel.CourierID)
	}
	if reportModifyModel.ReportDate != nil {
		builder = builder.Set("report_date", reportModifyModel.ReportDate)
	}
	if reportModifyModel.DepartureTime != nil {
		builder = builder.Set("departure_time", reportModifyModel.DepartureTime)
	}
	if reportModifyModel.ArrivalTime != nil {
		builder = builder.Set("arrival_time", reportModifyModel.ArrivalTime)
	}
	if reportModifyModel.DeliveryTime != nil {
		builder = builder.Set("delivery_time", reportModifyModel.DeliveryTime)
	}
	if reportModifyModel.TransitMinutes != nil {
		builder = builder.Set("transit_minutes", reportModifyModel.TransitMinutes)
	}
	if reportModifyModel.TotalMinutes != nil {
		builder = builder.Set("total_minutes", reportModifyModel.TotalMinutes)
	}
	if reportModifyModel.Outcome != nil {
		builder = builder.Set("outcome", reportModifyModel.Outcome)
		// failure_reason tracks the outcome: a successful outcome clears it.
		builder = builder.Set("failure_reason", reportModifyModel.FailureReason)
	} else if reportModifyModel.FailureReason != nil {
		builder = builder.Set("failure_reason", reportModifyModel.FailureReason)
	}
	if reportModifyModel.Rating != nil {
		builder = builder.Set("rating", reportModifyModel.Rating)
	}
	if reportModifyModel.ClientComments != nil {
		builder = builder.Set("client_comments", reportModifyModel.ClientComments)
	}

	builder = builder.
		Where(sq.Eq{"id": reportModifyModel.ID}).
		Suffix("RETURNING " + reportColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository update error: %w", err)
	}

	reportDB, err := scanReport(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}
		return nil, fmt.Errorf("unexpected report repository update error: %w", err)
	}

	return ToDomain(reportDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM delivery_reports WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected report repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

// Summary aggregates outcomes across all reports and counts delivered orders
// that never got one.
func (r *Repository) Summary(ctx context.Context) (*entities.ReportSummary, error) {
	query := `SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE outcome = 'successful'),
			COUNT(*) FILTER (WHERE outcome = 'failed'),
			COUNT(*) FILTER (WHERE outcome = 'rescheduled'),
			AVG(rating),
			(SELECT COUNT(*)
			 FROM orders o
			 WHERE o.status = 'delivered'
			   AND NOT EXISTS (SELECT 1 FROM delivery_reports dr WHERE dr.order_id = o.id))
		FROM delivery_reports`

	var summaryDB SummaryDB
	err := r.querier.QueryRow(ctx, query).Scan(
		&summaryDB.TotalDeliveries,
		&summaryDB.Successful,
		&summaryDB.Failed,
		&summaryDB.Rescheduled,
		&summaryDB.AverageRating,
		&summaryDB.DeliveredNoReport,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository summary error: %w", err)
	}

	return ToSummaryDomain(&summaryDB), nil
}

func scanReport(row pgx.Row) (*DeliveryReportDB, error) {
	var reportDB DeliveryReportDB
	err := row.Scan(
		&reportDB.ID,
		&reportDB.OrderID,
		&reportDB.CourierID,
		&reportDB.ReportDate,
		&reportDB.DepartureTime,
		&reportDB.ArrivalTime,
		&reportDB.DeliveryTime,
		&reportDB.TransitMinutes,
		&reportDB.TotalMinutes,
		&reportDB.Outcome,
		&reportDB.FailureReason,
		&reportDB.Rating,
		&reportDB.ClientComments,
	)
	if err != nil {
		return nil, err
	}
	return &reportDB, nil
}
