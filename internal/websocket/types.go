package websocket

import (
	"time"

	"github.com/gorilla/websocket"

	"pulse-srv/internal/model"
)

// MessageType tags the envelope pushed to clients.
type MessageType string

const (
	MessageTypeAlert  MessageType = "ALERT"
	MessageTypeSystem MessageType = "SYSTEM"
)

// ChannelType is the first segment of a redis channel name.
type ChannelType string

const (
	ChannelTypeAlert  ChannelType = "alert"
	ChannelTypeSystem ChannelType = "system"
)

// ProcessMessageInput is the raw input from Redis
type ProcessMessageInput struct {
	Channel string
	Payload []byte
}

// ConnectionInput represents a new connection attempt.
type ConnectionInput struct {
	Scope      model.Scope
	HospitalID string // optional filter, must be accessible by Scope
	Conn       *websocket.Conn
}

type HubStats struct {
	ActiveConnections int `json:"active_connections"`
	TotalUniqueUsers  int `json:"total_unique_users"`
}

// NotificationOutput is the final payload sent to the client
type NotificationOutput struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SystemPayload is published on system:* channels.
type SystemPayload struct {
	Event   string `json:"system_event"`
	Message string `json:"message"`
}

// Config tunes connection pumps and limits.
type Config struct {
	MaxConnections  int
	ReadBufferSize  int
	WriteBufferSize int
	PongWait        time.Duration
	PingPeriod      time.Duration
	WriteWait       time.Duration
	MaxMessageSize  int64
	AllowedOrigins  []string
}
