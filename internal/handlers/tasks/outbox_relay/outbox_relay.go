package outbox_relay

import (
	"context"
	"time"

	"restaurant-admin/pkg/logger"
)

type OutboxRelay struct {
	log        handlerLogger
	dispatcher Dispatcher
	interval   time.Duration
}

func NewOutboxRelay(log handlerLogger, dispatcher Dispatcher, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:        log.With(),
		dispatcher: dispatcher,
		interval:   interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do отправляет одну пачку событий, тик не должен пережить интервал
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	result, err := o.dispatcher.Dispatch(ctxWithTimeout)

	if result.Sent > 0 || result.Failed > 0 {
		o.log.With(
			logger.NewField("sent", result.Sent),
			logger.NewField("failed", result.Failed),
		).Info("outbox relay")
	}

	return err
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
