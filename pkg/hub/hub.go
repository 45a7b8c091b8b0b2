// Package hub рассылает сообщения websocket подписчикам, сгруппированным по комнатам.
//
// Набор подписчиков принадлежит одной горутине Run, остальные методы общаются
// с ней через каналы.
package hub

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"restaurant-admin/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
	sendBuffer     = 64
	publishBuffer  = 256
)

var ErrClosed = errors.New("hub closed")

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type client struct {
	room int64
	conn *websocket.Conn
	send chan []byte
}

type message struct {
	room    int64
	payload []byte
}

type Hub struct {
	log         handlerLogger
	register    chan *client
	unregister  chan *client
	broadcast   chan message
	rooms       map[int64]map[*client]struct{}
	subscribers atomic.Int64
	done        chan struct{}
}

func New(log handlerLogger) *Hub {
	return &Hub{
		log:        log.With(logger.NewField("component", "hub")),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan message, publishBuffer),
		rooms:      make(map[int64]map[*client]struct{}),
		done:       make(chan struct{}),
	}
}

// Run блокирует до отмены ctx, после выхода все соединения закрыты.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			set, ok := h.rooms[c.room]
			if !ok {
				set = make(map[*client]struct{})
				h.rooms[c.room] = set
			}
			set[c] = struct{}{}
			h.subscribers.Add(1)
			SubscribersGauge.Inc()
		case c := <-h.unregister:
			h.remove(c)
		case m := <-h.broadcast:
			for c := range h.rooms[m.room] {
				select {
				case c.send <- m.payload:
				default:
					// медленный клиент
					h.log.Warn("subscriber send buffer full, dropping",
						logger.NewField("room", m.room),
					)
					h.remove(c)
				}
			}
		case <-ctx.Done():
			for _, set := range h.rooms {
				for c := range set {
					h.remove(c)
				}
			}
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	set, ok := h.rooms[c.room]
	if !ok {
		return
	}
	if _, exists := set[c]; !exists {
		return
	}

	delete(set, c)
	close(c.send)
	h.subscribers.Add(-1)
	SubscribersGauge.Dec()

	if len(set) == 0 {
		delete(h.rooms, c.room)
	}
}

// Publish ставит сообщение в очередь рассылки комнаты room.
func (h *Hub) Publish(room int64, payload []byte) {
	select {
	case h.broadcast <- message{room: room, payload: payload}:
	case <-h.done:
	default:
		h.log.Warn("publish queue full, dropping message",
			logger.NewField("room", room),
		)
	}
}

// Subscribers количество активных подписчиков во всех комнатах.
func (h *Hub) Subscribers() int64 {
	return h.subscribers.Load()
}

// Serve подписывает соединение на комнату и запускает его read/write циклы.
// Соединение закрывается хабом.
func (h *Hub) Serve(room int64, conn *websocket.Conn) error {
	c := &client{
		room: room,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return ErrClosed
	}

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// входящие сообщения не ожидаются, читаем до ошибки
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
