//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_feed_test
package order_feed

import (
	"github.com/gorilla/websocket"
	"restaurant-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Subscriber interface {
	Serve(room int64, conn *websocket.Conn) error
}

type Publisher interface {
	Publish(room int64, payload []byte)
}
