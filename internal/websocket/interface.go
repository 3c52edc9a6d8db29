package websocket

import "context"

// UseCase owns the live alert stream: it tracks connections and routes
// messages arriving from redis to the clients allowed to see them.
type UseCase interface {
	Run()
	Shutdown(ctx context.Context) error
	Register(ctx context.Context, input ConnectionInput) error
	GetStats(ctx context.Context) (HubStats, error)
	ProcessMessage(ctx context.Context, input ProcessMessageInput) error
}
