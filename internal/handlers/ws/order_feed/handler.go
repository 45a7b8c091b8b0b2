// Package order_feed отдает branch admin ленту изменений заказов его ресторана.
package order_feed

import (
	"net/http"

	"github.com/gorilla/websocket"
	"restaurant-admin/internal/pkg/principal"
	"restaurant-admin/pkg/logger"
)

const bufferSize = 1024

type Handler struct {
	log        handlerLogger
	subscriber Subscriber
	upgrader   websocket.Upgrader
}

func New(log handlerLogger, subscriber Subscriber) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		subscriber: subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  bufferSize,
			WriteBufferSize: bufferSize,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := principal.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// при ошибке Upgrade сам отвечает клиенту
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}

	err = h.subscriber.Serve(p.RestaurantID, conn)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("restaurant_id", p.RestaurantID),
		).Warn("subscribe order feed")
		return
	}

	h.log.With(
		logger.NewField("user_id", p.UserID),
		logger.NewField("restaurant_id", p.RestaurantID),
	).Info("order feed subscribed")
}
