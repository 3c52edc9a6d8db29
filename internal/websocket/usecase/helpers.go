package usecase

import (
	"strings"

	"pulse-srv/internal/websocket"
)

// parseChannel parses a Redis channel string into a ParsedChannel struct.
// Supported formats:
// - alert:{hospital_id}:{severity}
// - system:{event}
func parseChannel(channel string) (ParsedChannel, error) {
	parts := strings.Split(channel, ":")
	if len(parts) < 2 {
		return ParsedChannel{}, websocket.ErrInvalidChannel
	}

	switch websocket.ChannelType(parts[0]) {
	case websocket.ChannelTypeAlert:
		if len(parts) != 3 || parts[1] == "" {
			return ParsedChannel{}, websocket.ErrInvalidChannel
		}
		return ParsedChannel{
			ChannelType: websocket.ChannelTypeAlert,
			HospitalID:  parts[1],
			SubType:     parts[2],
		}, nil
	case websocket.ChannelTypeSystem:
		return ParsedChannel{
			ChannelType: websocket.ChannelTypeSystem,
			SubType:     parts[1],
		}, nil
	default:
		return ParsedChannel{}, websocket.ErrInvalidChannel
	}
}
