package alert

import (
	"context"

	"pulse-srv/internal/model"
)

// UseCase owns the alert lifecycle: persistence, live fan-out, Discord
// dispatch and operator resolution.
type UseCase interface {
	Raise(ctx context.Context, input RaiseInput) ([]model.Alert, error)
	Dispatch(ctx context.Context, a model.Alert) error
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Resolve(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
}
