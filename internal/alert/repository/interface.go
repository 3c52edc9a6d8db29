package repository

import (
	"context"

	"pulse-srv/internal/model"
	"pulse-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, alerts []model.Alert) error
	Detail(ctx context.Context, id string) (model.Alert, error)
	Get(ctx context.Context, opts GetOptions) ([]model.Alert, paginator.Paginator, error)
	Resolve(ctx context.Context, opts ResolveOptions) (model.Alert, error)
}
