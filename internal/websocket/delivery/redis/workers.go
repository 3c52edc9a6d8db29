package redis

import (
	"context"

	"pulse-srv/internal/websocket"
)

func (s *subscriber) handleMessage(ctx context.Context, channel, payload string) {
	input := websocket.ProcessMessageInput{
		Channel: channel,
		Payload: []byte(payload),
	}

	if err := s.uc.ProcessMessage(ctx, input); err != nil {
		s.logger.Warnf(ctx, "process message failed: channel=%s err=%v", channel, err)
	}
}
