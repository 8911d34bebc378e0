// Package hub pushes booking status events to connected WebSocket clients.
package hub

import (
	"log"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"

	"github.com/prasdika/travelbooking/internal/models"
)

// Event is the message shape delivered to subscribers.
type Event struct {
	Status  models.BookingStatus `json:"status"`
	Message string               `json:"message"`
}

// Broadcaster is what the confirmation workflow needs from the hub.
type Broadcaster interface {
	Broadcast(status models.BookingStatus, message string)
}

// Hub tracks live WebSocket subscribers. Delivery is at-most-once and
// best-effort: there is no acknowledgment, no retry, and no replay for
// clients that connect after a broadcast.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

func New() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Handler upgrades the request to a WebSocket subscription and blocks until
// the client disconnects. Inbound frames are read and discarded.
func (h *Hub) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		websocket.Handler(func(ws *websocket.Conn) {
			h.add(ws)
			defer h.remove(ws)

			for {
				var discard string
				if err := websocket.Message.Receive(ws, &discard); err != nil {
					return
				}
			}
		}).ServeHTTP(c.Response(), c.Request())
		return nil
	}
}

// Broadcast sends the event to every live subscriber. Send failures drop the
// subscriber and are otherwise ignored.
func (h *Hub) Broadcast(status models.BookingStatus, message string) {
	event := Event{Status: status, Message: message}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := websocket.JSON.Send(conn, event); err != nil {
			log.Printf("hub: dropping subscriber: %v", err)
			h.remove(conn)
		}
	}
}

// SubscriberCount reports the number of live connections.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}
