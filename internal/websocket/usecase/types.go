package usecase

import (
	"pulse-srv/internal/websocket"
)

// ParsedChannel represents the components extracted from a Redis channel string.
type ParsedChannel struct {
	ChannelType websocket.ChannelType
	HospitalID  string // empty for broadcast channels like system:*
	SubType     string // alert severity or system event
}
