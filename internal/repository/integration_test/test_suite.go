package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"restaurant-admin/internal/pkg/config"
	"restaurant-admin/internal/pkg/postgres"
	"restaurant-admin/pkg/logger/zap_adapter"
	"restaurant-admin/pkg/querier"
	"restaurant-admin/pkg/tx"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("error")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func GetTxManager() *tx.Manager {
	return tx.New(GetQuerier().Pool(), pgx.ReadCommitted)
}

// SetupDB пакеты используют одну базу, запускать с -p 1
func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_status_outbox, payments, order_items, orders, products, restaurants, users
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// Fixture общий набор данных: ресторан #7 владельца #1, ресторан #8 владельца #2,
// заказ #42 ресторана #7 в preparing с наличным платежом #99 в Pending.
const Fixture = `
	INSERT INTO users (id, name, email, password_hash, role) VALUES
		(1, 'Branch Seven', 'seven@example.com', 'x', 'branch_admin'),
		(2, 'Branch Eight', 'eight@example.com', 'x', 'branch_admin'),
		(3, 'Customer', 'customer@example.com', 'x', 'customer');
	INSERT INTO restaurants (id, owner_id, name, status) VALUES
		(7, 1, 'Pizza House', 'active'),
		(8, 2, 'Sushi Bar', 'active');
	INSERT INTO products (id, restaurant_id, name, category, price, image) VALUES
		(1, 7, 'Margherita', 'pizza', 10.50, 'margherita.jpg'),
		(2, 7, 'Pepperoni', 'pizza', 12.00, NULL);
	INSERT INTO orders (id, restaurant_id, customer_id, total_amount, status, order_type) VALUES
		(42, 7, 3, 33.00, 'preparing', 'dine_in');
	INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, image_url) VALUES
		(42, 1, 'Margherita', 2, 10.50, NULL),
		(42, 2, 'Pepperoni', 1, 12.00, 'https://cdn.example.com/pepperoni.jpg'),
		(42, NULL, 'Removed dish', 1, 0.00, NULL);
	INSERT INTO payments (payment_id, order_id, payment_method, payment_status, amount) VALUES
		(99, 42, 'Cash', 'Pending', 33.00);
	SELECT setval('users_id_seq', 100);
	SELECT setval('restaurants_id_seq', 100);
	SELECT setval('products_id_seq', 100);
	SELECT setval('orders_id_seq', 100);
	SELECT setval('payments_payment_id_seq', 100);
`
