package outbox

import (
	"context"
	"fmt"
	"time"

	"restaurant-admin/internal/entities"
)

const (
	LeaseDuration = 30 * time.Second
	baseRetry     = time.Second
	maxRetry      = time.Minute
	maxRetryShift = 6
)

type Result struct {
	Sent   int
	Failed int
}

type Relay struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	batch      int
}

func NewRelay(repository Repository, publisher Publisher, txManager TxManager, batch int) (*Relay, error) {
	if batch <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatch, batch)
	}

	return &Relay{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		batch:      batch,
	}, nil
}

// Dispatch отправляет пачку готовых событий. Блокировка строк фиксируется
// отдельной транзакцией, публикация идет уже вне ее.
func (r *Relay) Dispatch(ctx context.Context) (Result, error) {
	var result Result

	messages, err := r.lock(ctx)
	if err != nil {
		return result, err
	}

	for _, m := range messages {
		if err := ctx.Err(); err != nil {
			// необработанные строки вернутся после истечения lease
			return result, err
		}

		if err := r.publisher.Publish(ctx, m.Key, m.Payload); err != nil {
			FailedTotal.Inc()
			result.Failed++

			if markErr := r.repository.MarkFailed(ctx, m.ID, RetryDelay(m.Attempts)); markErr != nil {
				return result, fmt.Errorf("mark outbox event %d failed: %w", m.ID, markErr)
			}
			continue
		}

		if err := r.repository.MarkSent(ctx, m.ID); err != nil {
			return result, fmt.Errorf("mark outbox event %d sent: %w", m.ID, err)
		}
		PublishedTotal.Inc()
		result.Sent++
	}

	return result, nil
}

func (r *Relay) lock(ctx context.Context) ([]entities.OutboxMessage, error) {
	var messages []entities.OutboxMessage

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		messages, err = r.repository.LockDue(ctx, r.batch, LeaseDuration)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("lock outbox events: %w", err)
	}

	return messages, nil
}

// RetryDelay экспоненциальная задержка 1s * 2^attempts, не больше минуты
func RetryDelay(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > maxRetryShift {
		attempts = maxRetryShift
	}

	delay := baseRetry << attempts
	if delay > maxRetry {
		delay = maxRetry
	}
	return delay
}
