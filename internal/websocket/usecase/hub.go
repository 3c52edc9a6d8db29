package usecase

import (
	"context"
	"sync"

	"pulse-srv/pkg/log"
	"pulse-srv/pkg/metrics"
)

// Hub maintains the set of active clients and routes messages to them.
type Hub struct {
	clients map[*Connection]bool

	// user_id -> set of connections
	users map[string]map[*Connection]bool

	broadcast  chan []byte
	register   chan *Connection
	unregister chan *Connection
	quit       chan struct{}
	stopOnce   sync.Once

	mu sync.RWMutex

	logger         log.Logger
	maxConnections int
}

func newHub(logger log.Logger, maxConnections int) *Hub {
	return &Hub{
		broadcast:      make(chan []byte),
		register:       make(chan *Connection),
		unregister:     make(chan *Connection),
		quit:           make(chan struct{}),
		clients:        make(map[*Connection]bool),
		users:          make(map[string]map[*Connection]bool),
		logger:         logger,
		maxConnections: maxConnections,
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if _, ok := h.users[client.scope.UserID]; !ok {
				h.users[client.scope.UserID] = make(map[*Connection]bool)
			}
			h.users[client.scope.UserID][client] = true
			metrics.WebsocketConnections.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				h.removeLocked(client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// removeLocked drops client and closes its send channel. Caller holds mu.
func (h *Hub) removeLocked(client *Connection) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	if userConns, ok := h.users[client.scope.UserID]; ok {
		delete(userConns, client)
		if len(userConns) == 0 {
			delete(h.users, client.scope.UserID)
		}
	}
	metrics.WebsocketConnections.Set(float64(len(h.clients)))
}

// add hands a connection to the run loop. It fails once the hub is stopped.
func (h *Hub) add(client *Connection) bool {
	select {
	case h.register <- client:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) remove(client *Connection) {
	select {
	case h.unregister <- client:
	case <-h.quit:
	}
}

// SendToHospital delivers message to every connection allowed to see hospitalID.
// It returns the number of connections the message was queued on.
func (h *Hub) SendToHospital(hospitalID string, message []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for client := range h.clients {
		if !client.accepts(hospitalID) {
			continue
		}
		select {
		case client.send <- message:
			sent++
		default:
			h.logger.Warnf(context.Background(), "internal.websocket.usecase.SendToHospital: send buffer full for user %s", client.scope.UserID)
		}
	}
	return sent
}

// Broadcast sends a message to all active connections.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.quit:
	}
}

// Stats returns active connections and unique users.
func (h *Hub) Stats() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients), len(h.users)
}

func (h *Hub) full() bool {
	if h.maxConnections <= 0 {
		return false
	}
	active, _ := h.Stats()
	return active >= h.maxConnections
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}
