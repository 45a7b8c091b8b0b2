package entities

import (
	"time"

	"github.com/google/uuid"
)

const EventOrderStatusChanged = "order.status.changed"

type OrderStatusChangedEvent struct {
	EventID       uuid.UUID          `json:"event_id"`
	OrderID       int64              `json:"order_id"`
	RestaurantID  int64              `json:"restaurant_id"`
	Status        OrderStatusType    `json:"status"`
	PaymentStatus *PaymentStatusType `json:"payment_status,omitempty"`
	ChangedAt     time.Time          `json:"changed_at"`
}

type OutboxMessage struct {
	ID        int64
	EventID   uuid.UUID
	EventType string
	Key       string
	Payload   []byte
	Attempts  int
}
