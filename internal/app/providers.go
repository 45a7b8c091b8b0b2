package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"restaurant-admin/internal/handlers/rest/branch_admin_delete"
	"restaurant-admin/internal/handlers/rest/branch_admin_post"
	"restaurant-admin/internal/handlers/rest/branch_admins_get"
	"restaurant-admin/internal/handlers/rest/login_post"
	"restaurant-admin/internal/handlers/rest/menu_get"
	"restaurant-admin/internal/handlers/rest/orders_action_post"
	"restaurant-admin/internal/handlers/rest/orders_get"
	"restaurant-admin/internal/handlers/rest/report_get"
	"restaurant-admin/internal/handlers/rest/restaurant_status_put"
	"restaurant-admin/internal/handlers/tasks/outbox_relay"
	"restaurant-admin/internal/handlers/ws/order_feed"
	"restaurant-admin/internal/pkg/config"
	"restaurant-admin/internal/pkg/factory/payment_status"
	authMiddleware "restaurant-admin/internal/pkg/middlewares/auth"
	branchAdminRepo "restaurant-admin/internal/repository/branch_admin"
	orderRepo "restaurant-admin/internal/repository/order"
	outboxRepo "restaurant-admin/internal/repository/outbox"
	paymentRepo "restaurant-admin/internal/repository/payment"
	productRepo "restaurant-admin/internal/repository/product"
	reportRepo "restaurant-admin/internal/repository/report"
	userRepo "restaurant-admin/internal/repository/user"
	authService "restaurant-admin/internal/service/auth"
	branchAdminService "restaurant-admin/internal/service/branch_admin"
	menuService "restaurant-admin/internal/service/menu"
	orderService "restaurant-admin/internal/service/order"
	outboxService "restaurant-admin/internal/service/outbox"
	reportService "restaurant-admin/internal/service/report"
	"restaurant-admin/pkg/background"
	"restaurant-admin/pkg/hub"
	"restaurant-admin/pkg/logger"
	"restaurant-admin/pkg/querier"
	"restaurant-admin/pkg/session"
	"restaurant-admin/pkg/tx"
)

// Application зависимости HTTP сервиса (cmd/service)
type Application struct {
	ServiceOrder       ServiceOrder
	ServiceAuth        login_post.Service
	ServiceBranchAdmin ServiceBranchAdmin
	ServiceMenu        menu_get.Service
	ServiceReport      report_get.Service
	TokenParser        authMiddleware.TokenParser
	Hub                *hub.Hub
}

type ServiceOrder interface {
	orders_action_post.Service
	orders_get.Service
}

type ServiceBranchAdmin interface {
	branch_admin_post.Service
	branch_admins_get.Service
	branch_admin_delete.Service
	restaurant_status_put.Service
}

// RelayWorkerApp зависимости воркера outbox (cmd/worker-outbox-relay)
type RelayWorkerApp struct {
	BackgroundWorkers *background.Worker
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, pgx.ReadCommitted)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideBranchAdminRepository(querier *querier.Querier) *branchAdminRepo.Repository {
	return branchAdminRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideSessionIssuer(cfg *config.Config) (*session.Issuer, error) {
	return session.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideHub(log logger.Logger) *hub.Hub {
	return hub.New(log)
}

func provideOrderFeedNotifier(log logger.Logger, h *hub.Hub) *order_feed.Notifier {
	return order_feed.NewNotifier(log, h)
}

func provideServiceOrder(
	orders orderService.OrderRepository,
	payments orderService.PaymentRepository,
	outbox orderService.OutboxRepository,
	ruleFactory orderService.RuleFactory,
	txManager orderService.TxManager,
	notifier orderService.Notifier,
) *orderService.Service {
	return orderService.New(orders, payments, outbox, ruleFactory, txManager, notifier)
}

func provideServiceAuth(repository authService.Repository, issuer authService.TokenIssuer) *authService.Service {
	return authService.New(repository, issuer)
}

func provideServiceBranchAdmin(
	repository branchAdminService.Repository,
	txManager branchAdminService.TxManager,
) *branchAdminService.Service {
	return branchAdminService.New(repository, txManager)
}

func provideServiceMenu(repository menuService.Repository) *menuService.Service {
	return menuService.New(repository)
}

func provideServiceReport(repository reportService.Repository) *reportService.Service {
	return reportService.New(repository)
}

func provideRuleFactory() *payment_status.RuleFactory {
	return payment_status.NewRuleFactory()
}

func provideOutboxRelay(
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	txManager outboxService.TxManager,
	cfg *config.Config,
) (*outboxService.Relay, error) {
	return outboxService.NewRelay(repository, publisher, txManager, cfg.OutboxRelay.BatchSize)
}

func provideOutboxRelayTask(
	log logger.Logger,
	dispatcher outbox_relay.Dispatcher,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, dispatcher, cfg.OutboxRelay.Interval)
}

func provideTaskList(outboxRelayTask *outbox_relay.OutboxRelay) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
