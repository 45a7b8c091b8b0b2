package order_feed

import (
	"encoding/json"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/entities"
	"restaurant-admin/pkg/logger"
)

// Notifier рассылает изменения статусов подписчикам ресторана
type Notifier struct {
	log       handlerLogger
	publisher Publisher
}

func NewNotifier(log handlerLogger, publisher Publisher) *Notifier {
	return &Notifier{
		log:       log.With(),
		publisher: publisher,
	}
}

func (n *Notifier) Notify(change entities.OrderStatusChange) {
	payload, err := json.Marshal(dto.OrderStatusChangeFromEntity(change))
	if err != nil {
		n.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", change.OrderID),
		).Error("marshal order status change")
		return
	}

	n.publisher.Publish(change.RestaurantID, payload)
}
