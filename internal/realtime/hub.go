// Package realtime pushes live store snapshots to websocket consumers,
// giving the presentation layer the same replay-latest view the stores
// provide in-process.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

// Event carries the full current sequence of one entity type.
type Event struct {
	Entity  string `json:"entity"`
	Records any    `json:"records"`
}

const writeTimeout = 5 * time.Second

// Hub fans store emissions out to connected websocket clients. New
// connections immediately receive the latest snapshot of every watched
// entity type, then every subsequent emission in mutation order.
type Hub struct {
	log *logrus.Logger

	mu     sync.Mutex
	conns  map[*websocket.Conn]bool
	latest map[string]Event
	order  []string

	broadcast chan Event
	upgrader  websocket.Upgrader
}

// NewHub creates a hub; call Watch to attach stores and Run to start
// delivery.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		log:       log,
		conns:     make(map[*websocket.Conn]bool),
		latest:    make(map[string]Event),
		broadcast: make(chan Event, 256),
		upgrader: websocket.Upgrader{
			// The REST layer already handles cross-origin policy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Watch subscribes the hub to every entity store. The replay-latest
// delivery on subscribe primes the per-entity snapshot cache.
func (h *Hub) Watch(stores *service.Stores) {
	stores.Clients.Subscribe(func(records []models.Client) {
		h.publish(Event{Entity: "clients", Records: records})
	})
	stores.Transactions.Subscribe(func(records []models.ClientTransaction) {
		h.publish(Event{Entity: "transactions", Records: records})
	})
	stores.Products.Subscribe(func(records []models.Product) {
		h.publish(Event{Entity: "products", Records: records})
	})
	stores.Invoices.Subscribe(func(records []models.Invoice) {
		h.publish(Event{Entity: "invoices", Records: records})
	})
	stores.Users.Subscribe(func(records []models.User) {
		h.publish(Event{Entity: "users", Records: records})
	})
}

// Run delivers broadcast events to all connections until the hub is
// closed. Intended to run on its own goroutine.
func (h *Hub) Run() {
	for ev := range h.broadcast {
		h.mu.Lock()
		for conn := range h.conns {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				h.log.Debugf("Dropping websocket client: %v", err)
				conn.Close()
				delete(h.conns, conn)
			}
		}
		h.mu.Unlock()
	}
}

// Handle upgrades the request and registers the connection.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("Websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	for _, entity := range h.order {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(h.latest[entity]); err != nil {
			h.mu.Unlock()
			conn.Close()
			return
		}
	}
	h.conns[conn] = true
	h.mu.Unlock()

	// Drain the connection; we never expect client messages.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.conns, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

// publish caches the latest snapshot per entity and queues it for
// delivery. Called synchronously from store emissions; the buffered
// channel decouples store mutations from slow consumers. When the queue
// is full the oldest queued event is evicted so the freshest snapshot
// still goes out; dropping old events is safe because every event
// carries the full sequence.
func (h *Hub) publish(ev Event) {
	h.mu.Lock()
	if _, ok := h.latest[ev.Entity]; !ok {
		h.order = append(h.order, ev.Entity)
	}
	h.latest[ev.Entity] = ev
	h.mu.Unlock()

	for {
		select {
		case h.broadcast <- ev:
			return
		default:
		}
		select {
		case stale := <-h.broadcast:
			h.log.Warnf("Realtime queue full, evicting stale %s snapshot", stale.Entity)
		default:
		}
	}
}
