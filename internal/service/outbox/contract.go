//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"restaurant-admin/internal/entities"
)

type Repository interface {
	LockDue(ctx context.Context, batch int, lease time.Duration) ([]entities.OutboxMessage, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, retryAfter time.Duration) error
}

type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
