package usecase

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"pulse-srv/internal/model"
	ws "pulse-srv/internal/websocket"
	"pulse-srv/pkg/log"
)

const sendBufferSize = 256

// Connection is one authenticated websocket client.
type Connection struct {
	hub        *Hub
	conn       *websocket.Conn
	scope      model.Scope
	hospitalID string
	send       chan []byte
	cfg        ws.Config
	logger     log.Logger
}

func newConnection(hub *Hub, conn *websocket.Conn, scope model.Scope, hospitalID string, cfg ws.Config, logger log.Logger) *Connection {
	return &Connection{
		hub:        hub,
		conn:       conn,
		scope:      scope,
		hospitalID: hospitalID,
		send:       make(chan []byte, sendBufferSize),
		cfg:        cfg,
		logger:     logger,
	}
}

// accepts reports whether alerts for hospitalID should reach this client.
func (c *Connection) accepts(hospitalID string) bool {
	if c.hospitalID != "" {
		return c.hospitalID == hospitalID
	}
	return c.scope.CanAccessHospital(hospitalID)
}

// readPump keeps the read side alive for pong handling and disconnect
// detection. Clients never send application messages.
func (c *Connection) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warnf(context.Background(), "internal.websocket.usecase.readPump: user %s: %v", c.scope.UserID, err)
			}
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
