//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/client_delete"
	"dispatch/internal/handlers/rest/client_get"
	"dispatch/internal/handlers/rest/client_post"
	"dispatch/internal/handlers/rest/client_put"
	"dispatch/internal/handlers/rest/clients_get"
	"dispatch/internal/handlers/rest/courier_delete"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/dispatch_assign_pending_post"
	"dispatch/internal/handlers/rest/dispatch_assign_post"
	"dispatch/internal/handlers/rest/dispatch_reassign_post"
	"dispatch/internal/handlers/rest/order_delete"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/order_history_get"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/order_put"
	"dispatch/internal/handlers/rest/order_status_post"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/report_delete"
	"dispatch/internal/handlers/rest/report_get"
	"dispatch/internal/handlers/rest/report_post"
	"dispatch/internal/handlers/rest/report_put"
	"dispatch/internal/handlers/rest/reports_get"
	"dispatch/internal/handlers/rest/reports_summary_get"
	"dispatch/internal/handlers/tasks/auto_assign"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/delivery_eta"

	clientRepo "dispatch/internal/repository/client"
	courierRepo "dispatch/internal/repository/courier"
	historyRepo "dispatch/internal/repository/history"
	orderRepo "dispatch/internal/repository/order"
	reportRepo "dispatch/internal/repository/report"
	assignmentService "dispatch/internal/service/assignment"
	clientService "dispatch/internal/service/client"
	courierService "dispatch/internal/service/courier"
	orderService "dispatch/internal/service/order"
	reportService "dispatch/internal/service/report"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	AutoAssignInterval time.Duration
)

type Application struct {
	ServiceClient     ServiceClient
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServiceReport     ServiceReport
	BackgroundWorkers *background.Worker
}

type ServiceClient interface {
	client_get.Service
	clients_get.Service
	client_post.Service
	client_put.Service
	client_delete.Service
}

type ServiceCourier interface {
	courier_get.Service
	couriers_get.Service
	courier_post.Service
	courier_put.Service
	courier_delete.Service
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
	order_status_post.Service
	order_history_get.Service
}

type ServiceAssignment interface {
	dispatch_assign_post.Service
	dispatch_reassign_post.Service
	dispatch_assign_pending_post.Service
}

type ServiceReport interface {
	report_get.Service
	reports_get.Service
	report_post.Service
	report_put.Service
	report_delete.Service
	reports_summary_get.Service
}

// InitializeApplication assembles the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAutoAssignInterval,

		provideClientRepository,
		provideCourierRepository,
		provideOrderRepository,
		provideHistoryRepository,
		provideReportRepository,

		provideServiceClient,
		provideServiceCourier,
		provideServiceOrder,
		provideServiceAssignment,
		provideServiceReport,
		delivery_eta.New,

		provideAutoAssignTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceClient), new(*clientService.Client)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),
		wire.Bind(new(ServiceReport), new(*reportService.Service)),

		wire.Bind(new(clientService.Repository), new(*clientRepo.Repository)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.ClientRepository), new(*clientRepo.Repository)),
		wire.Bind(new(orderService.ReportService), new(*reportService.Service)),
		wire.Bind(new(orderService.ETAFactory), new(*delivery_eta.ETAFactory)),

		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(assignmentService.HistoryRepository), new(*historyRepo.Repository)),

		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),
		wire.Bind(new(reportService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),

		wire.Bind(new(auto_assign.Service), new(*assignmentService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp assembles the order.status.changed worker
// (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideClientRepository,
		provideCourierRepository,
		provideOrderRepository,
		provideHistoryRepository,
		provideReportRepository,

		provideServiceOrder,
		provideServiceReport,
		delivery_eta.New,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.ClientRepository), new(*clientRepo.Repository)),
		wire.Bind(new(orderService.ReportService), new(*reportService.Service)),
		wire.Bind(new(orderService.ETAFactory), new(*delivery_eta.ETAFactory)),

		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),
		wire.Bind(new(reportService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClientRepository(querier *querier.Querier) *clientRepo.Repository {
	return clientRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideServiceClient(repository clientService.Repository) *clientService.Client {
	return clientService.New(repository)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	historyRepository orderService.HistoryRepository,
	courierRepository orderService.CourierRepository,
	clientRepository orderService.ClientRepository,
	reportSvc orderService.ReportService,
	etaFactory orderService.ETAFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		repository,
		historyRepository,
		courierRepository,
		clientRepository,
		reportSvc,
		etaFactory,
		txManager,
	)
}

func provideServiceAssignment(
	orderRepository assignmentService.OrderRepository,
	courierRepository assignmentService.CourierRepository,
	historyRepository assignmentService.HistoryRepository,
	txManager assignmentService.TxManager,
) *assignmentService.Service {
	return assignmentService.New(
		orderRepository,
		courierRepository,
		historyRepository,
		txManager,
	)
}

func provideServiceReport(
	repository reportService.Repository,
	orderRepository reportService.OrderRepository,
	txManager reportService.TxManager,
) *reportService.Service {
	return reportService.New(repository, orderRepository, txManager)
}

func provideAutoAssignInterval(cfg *config.Config) AutoAssignInterval {
	return AutoAssignInterval(cfg.Tasks.AutoAssignInterval)
}

func provideAutoAssignTask(
	log logger.Logger,
	assignmentSvc auto_assign.Service,
	interval AutoAssignInterval,
) *auto_assign.AutoAssign {
	return auto_assign.New(log, assignmentSvc, time.Duration(interval))
}

func provideTaskList(
	autoAssignTask *auto_assign.AutoAssign,
) []background.Task {
	return []background.Task{
		autoAssignTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
