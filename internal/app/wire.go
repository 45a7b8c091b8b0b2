//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"restaurant-admin/internal/handlers/rest/login_post"
	"restaurant-admin/internal/handlers/rest/menu_get"
	"restaurant-admin/internal/handlers/rest/report_get"
	"restaurant-admin/internal/handlers/tasks/outbox_relay"
	"restaurant-admin/internal/handlers/ws/order_feed"
	"restaurant-admin/internal/pkg/config"
	"restaurant-admin/internal/pkg/factory/payment_status"
	"restaurant-admin/internal/pkg/kafka"
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
	"restaurant-admin/pkg/logger"
	"restaurant-admin/pkg/session"
	"restaurant-admin/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
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

		provideOrderRepository,
		providePaymentRepository,
		provideOutboxRepository,
		provideUserRepository,
		provideBranchAdminRepository,
		provideProductRepository,
		provideReportRepository,

		provideSessionIssuer,
		provideHub,
		provideOrderFeedNotifier,
		provideRuleFactory,

		provideServiceOrder,
		provideServiceAuth,
		provideServiceBranchAdmin,
		provideServiceMenu,
		provideServiceReport,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(login_post.Service), new(*authService.Service)),
		wire.Bind(new(ServiceBranchAdmin), new(*branchAdminService.Service)),
		wire.Bind(new(menu_get.Service), new(*menuService.Service)),
		wire.Bind(new(report_get.Service), new(*reportService.Service)),
		wire.Bind(new(authMiddleware.TokenParser), new(*session.Issuer)),

		wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PaymentRepository), new(*paymentRepo.Repository)),
		wire.Bind(new(orderService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.RuleFactory), new(*payment_status.RuleFactory)),
		wire.Bind(new(orderService.Notifier), new(*order_feed.Notifier)),
		wire.Bind(new(authService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*session.Issuer)),
		wire.Bind(new(branchAdminService.Repository), new(*branchAdminRepo.Repository)),
		wire.Bind(new(menuService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(branchAdminService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

// InitializeRelayWorkerApp для воркера outbox (cmd/worker-outbox-relay)
func InitializeRelayWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*RelayWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOutboxRepository,
		provideOutboxRelay,
		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(RelayWorkerApp), "*"),

		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outbox_relay.Dispatcher), new(*outboxService.Relay)),
	)
	return &RelayWorkerApp{}, nil
}
