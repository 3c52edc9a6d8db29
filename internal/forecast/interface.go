package forecast

import (
	"context"

	"pulse-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Forecast(ctx context.Context, sc model.Scope, input ForecastInput) (model.Forecast, error)
	Decide(ctx context.Context, sc model.Scope, input ForecastInput) (model.Decision, error)
	Scenarios(ctx context.Context, sc model.Scope, input ScenariosInput) ([]ScenarioResult, error)
	Report(ctx context.Context, sc model.Scope, input ForecastInput) (ReportOutput, error)

	// Run is the scheduled path: decide, persist, raise alerts and refresh the cache.
	Run(ctx context.Context, input RunInput) (model.Decision, error)
}
