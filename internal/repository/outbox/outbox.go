package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service/outbox"
)

const (
	statusPending    = "pending"
	statusProcessing = "processing"
	statusSent       = "sent"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Add пишет событие в текущую транзакцию, ключ сообщения id заказа
func (r *Repository) Add(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal outbox event: %w", err)
	}

	query := `INSERT INTO order_status_outbox (event_id, event_type, event_key, payload, status)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.querier.Exec(
		ctx,
		query,
		event.EventID,
		entities.EventOrderStatusChanged,
		strconv.FormatInt(event.OrderID, 10),
		payload,
		statusPending,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return outbox.ErrDuplicateEvent
		}
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}

	return nil
}

// LockDue забирает готовые к отправке строки и ставит им lease,
// чтобы параллельный relay их не взял
func (r *Repository) LockDue(ctx context.Context, batch int, lease time.Duration) ([]entities.OutboxMessage, error) {
	query := `UPDATE order_status_outbox
		SET status = $1, next_retry = NOW() + $2::float8 * INTERVAL '1 second', updated_at = NOW()
		WHERE id IN (
			SELECT id FROM order_status_outbox
			WHERE (status = $3 OR status = $1) AND next_retry <= NOW()
			ORDER BY id
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, event_id, event_type, event_key, payload, attempts`

	rows, err := r.querier.Query(ctx, query, statusProcessing, lease.Seconds(), statusPending, batch)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository lock error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, batch)
	for rows.Next() {
		var m entities.OutboxMessage
		err := rows.Scan(&m.ID, &m.EventID, &m.EventType, &m.Key, &m.Payload, &m.Attempts)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository lock error: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository lock error: %w", err)
	}

	return messages, nil
}

func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	query := `UPDATE order_status_outbox
		SET status = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.querier.Exec(ctx, query, statusSent, id)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark sent error: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int64, retryAfter time.Duration) error {
	query := `UPDATE order_status_outbox
		SET status = $1, attempts = attempts + 1, next_retry = NOW() + $2::float8 * INTERVAL '1 second', updated_at = NOW()
		WHERE id = $3`

	_, err := r.querier.Exec(ctx, query, statusPending, retryAfter.Seconds(), id)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark failed error: %w", err)
	}
	return nil
}
