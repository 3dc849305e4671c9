package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
)

// Synthetic values for auto-generated reports. Transit time is not tracked
// per leg, so the generator fills in a flat figure and a perfect rating; a
// dispatcher edits the report afterwards if reality disagreed.
const (
	autoTransitMinutes = 30
	autoTotalMinutes   = 45
	autoRating         = 5
	autoClientComment  = "Delivery completed without incident"
)

type Service struct {
	repository      Repository
	orderRepository OrderRepository
	txManager       TxManager
}

func New(repository Repository, orderRepository OrderRepository, txManager TxManager) *Service {
	return &Service{
		repository:      repository,
		orderRepository: orderRepository,
		txManager:       txManager,
	}
}

// GenerateAutomatic creates the report for a freshly delivered order. It is
// idempotent: if the order already has a report nothing changes, so replayed
// delivery events do not produce duplicates.
func (s *Service) GenerateAutomatic(ctx context.Context, order *entities.Order) error {
	if order == nil || order.ID <= 0 {
		return ErrInvalidOrderID
	}

	_, err := s.repository.GetByOrderID(ctx, order.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrReportNotFound) {
		return fmt.Errorf("check existing report: %w", err)
	}

	now := time.Now().UTC()

	departure := now
	if order.AssignedAt != nil {
		departure = *order.AssignedAt
	}

	totalMinutes := autoTotalMinutes
	if order.ActualMinutes != nil {
		totalMinutes = *order.ActualMinutes
	}

	outcome := entities.OutcomeSuccessful
	reportModify := entities.DeliveryReportModify{
		OrderID:        &order.ID,
		CourierID:      order.CourierID,
		ReportDate:     &now,
		DepartureTime:  &departure,
		ArrivalTime:    &now,
		DeliveryTime:   order.DeliveredAt,
		TransitMinutes: pointer.ToInt(autoTransitMinutes),
		TotalMinutes:   &totalMinutes,
		Outcome:        &outcome,
		Rating:         pointer.ToInt(autoRating),
		ClientComments: pointer.ToString(autoClientComment),
	}

	if _, err := s.repository.Create(ctx, reportModify); err != nil {
		if errors.Is(err, ErrReportAlreadyExists) {
			return nil
		}
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// CreateManual records a report filed by a dispatcher. The order must be
// delivered and must not have a report yet.
func (s *Service) CreateManual(ctx context.Context, reportModify entities.DeliveryReportModify) (*entities.DeliveryReport, error) {
	if reportModify.OrderID == nil || *reportModify.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if reportModify.Outcome == nil || !reportModify.Outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}
	if err := validateOutcomeDetails(*reportModify.Outcome, reportModify.FailureReason); err != nil {
		return nil, err
	}
	if *reportModify.Outcome != entities.OutcomeFailed {
		reportModify.FailureReason = nil
	}
	if reportModify.Rating != nil && !isValidRating(*reportModify.Rating) {
		return nil, ErrInvalidRating
	}

	var created *entities.DeliveryReport
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, *reportModify.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Status != entities.OrderDelivered {
			return ErrOrderNotDelivered
		}

		if reportModify.CourierID == nil {
			reportModify.CourierID = order.CourierID
		}
		if reportModify.ReportDate == nil {
			now := time.Now().UTC()
			reportModify.ReportDate = &now
		}

		created, err = s.repository.Create(ctx, reportModify)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EditReport updates report fields. Changing the outcome re-checks the
// failure reason rule: failed keeps a reason, any other outcome drops it.
func (s *Service) EditReport(ctx context.Context, reportModify entities.DeliveryReportModify) (*entities.DeliveryReport, error) {
	if reportModify.ID == nil || *reportModify.ID <= 0 {
		return nil, ErrInvalidReportID
	}
	if reportModify.Outcome != nil {
		if !reportModify.Outcome.IsValid() {
			return nil, ErrInvalidOutcome
		}
		if err := validateOutcomeDetails(*reportModify.Outcome, reportModify.FailureReason); err != nil {
			return nil, err
		}
		if *reportModify.Outcome != entities.OutcomeFailed {
			reportModify.FailureReason = nil
		}
	}
	if reportModify.Rating != nil && !isValidRating(*reportModify.Rating) {
		return nil, ErrInvalidRating
	}

	updated, err := s.repository.Update(ctx, reportModify)
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	return updated, nil
}

func (s *Service) GetReport(ctx context.Context, id int64) (*entities.DeliveryReport, error) {
	if id <= 0 {
		return nil, ErrInvalidReportID
	}

	report, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	return report, nil
}

func (s *Service) GetReports(ctx context.Context, filter Filter) ([]entities.DeliveryReport, error) {
	if filter.Outcome != nil && !filter.Outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	reports, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get reports: %w", err)
	}

	return reports, nil
}

func (s *Service) DeleteReport(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidReportID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

func (s *Service) GetSummary(ctx context.Context) (*entities.ReportSummary, error) {
	summary, err := s.repository.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	return summary, nil
}
