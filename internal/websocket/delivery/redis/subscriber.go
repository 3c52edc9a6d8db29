package redis

import (
	"context"
	"fmt"

	"pulse-srv/internal/websocket"
)

func (s *subscriber) Start(ctx context.Context) error {
	channels := []string{
		websocket.AlertChannelPattern,
		websocket.SystemChannelPattern,
	}

	s.pubsub = s.redis.PSubscribe(ctx, channels...)

	// Wait for the subscription confirmation before returning.
	if _, err := s.pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.wg.Add(1)
	go s.listen(context.WithoutCancel(ctx))

	s.logger.Infof(ctx, "Redis subscriber started on channels: %v", channels)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.logger.Warnf(ctx, "redis pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg.Channel, msg.Payload)
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	close(s.quit)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Errorf(ctx, "failed to close pubsub: %v", err)
		}
	}
	s.wg.Wait()
	s.logger.Infof(ctx, "Redis subscriber stopped")
	return nil
}
