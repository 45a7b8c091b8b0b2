package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "restaurant-admin/internal/app"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/handlers/rest/branch_admin_delete"
	"restaurant-admin/internal/handlers/rest/branch_admin_post"
	"restaurant-admin/internal/handlers/rest/branch_admins_get"
	"restaurant-admin/internal/handlers/rest/healthcheck_head"
	"restaurant-admin/internal/handlers/rest/login_post"
	"restaurant-admin/internal/handlers/rest/menu_get"
	"restaurant-admin/internal/handlers/rest/orders_action_post"
	"restaurant-admin/internal/handlers/rest/orders_get"
	"restaurant-admin/internal/handlers/rest/ping_get"
	"restaurant-admin/internal/handlers/rest/report_get"
	"restaurant-admin/internal/handlers/rest/restaurant_status_put"
	"restaurant-admin/internal/handlers/ws/order_feed"
	"restaurant-admin/internal/pkg/config"
	"restaurant-admin/internal/pkg/dotenv"
	metrics_system "restaurant-admin/internal/pkg/metrics"
	"restaurant-admin/internal/pkg/middlewares/auth"
	"restaurant-admin/internal/pkg/middlewares/graceful_shutdown"
	"restaurant-admin/internal/pkg/middlewares/metrics"
	"restaurant-admin/internal/pkg/middlewares/rate_limiter"
	"restaurant-admin/internal/pkg/middlewares/timeout"
	"restaurant-admin/internal/pkg/postgres"
	"restaurant-admin/pkg/logger"
	"restaurant-admin/pkg/logger/zap_adapter"
	"restaurant-admin/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting restaurant-admin application")

	loaded, err := dotenv.Load(".env", "PORT")
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !loaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background() для graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsAutoApply {
		err = postgres.Migrate(ctx, log, pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	metrics_system.StartSystemMetricsCollector(ongoingCtx, pool)

	// hub закрывает websocket соединения по отмене ongoingCtx
	go businessApp.Hub.Run(ongoingCtx)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

const rateLimiterIdleTTL = 10 * time.Minute

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterBurst, token_bucket.NewKeyed(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterIdleTTL)))
	router.Handle("/metrics", promhttp.Handler())

	// websocket upgrade timeout пропускает
	router.Use(timeout.Middleware(cfg.RequestTimeout))

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool.Ping)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, pool)).Methods("GET")
	router.Handle("/auth/login", login_post.New(log, app.ServiceAuth)).Methods("POST")

	branch := router.PathPrefix("/branch").Subrouter()
	branch.Use(auth.Middleware(log, app.TokenParser, entities.RoleBranchAdmin))
	branch.Handle("/orders/feed", order_feed.New(log, app.Hub)).Methods("GET")
	branch.Handle("/orders/action", orders_action_post.New(log, app.ServiceOrder)).Methods("POST")
	branch.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	branch.Handle("/reports/summary", report_get.New(log, app.ServiceReport)).Methods("GET")
	branch.Handle("/menu", menu_get.New(log, app.ServiceMenu)).Methods("GET")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware(log, app.TokenParser, entities.RoleSuperAdmin))
	admin.Handle("/branch-admins", branch_admins_get.New(log, app.ServiceBranchAdmin)).Methods("GET")
	admin.Handle("/branch-admins", branch_admin_post.New(log, app.ServiceBranchAdmin)).Methods("POST")
	admin.Handle("/branch-admins/{id}", branch_admin_delete.New(log, app.ServiceBranchAdmin)).Methods("DELETE")
	admin.Handle("/restaurants/{id}/status", restaurant_status_put.New(log, app.ServiceBranchAdmin)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
