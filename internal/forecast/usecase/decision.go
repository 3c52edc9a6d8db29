package usecase

import (
	"context"
	"time"

	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
)

// Decide serves plain requests from the cache the scheduler refreshes and
// computes fresh decisions for everything else.
func (uc *implUseCase) Decide(ctx context.Context, sc model.Scope, input forecast.ForecastInput) (model.Decision, error) {
	if err := uc.authorize(sc, input.Facility); err != nil {
		return model.Decision{}, err
	}
	input = uc.normalize(input)

	if input.IsDefault() {
		if d, ok := uc.cachedDecision(ctx, input.Facility, input.Horizon); ok {
			return d, nil
		}
	}

	d, err := uc.decide(ctx, uc.engine, input)
	if err != nil {
		return model.Decision{}, err
	}
	if input.IsDefault() {
		uc.cacheDecision(ctx, input.Horizon, d)
	}
	return d, nil
}

func (uc *implUseCase) decide(ctx context.Context, eng engine.Engine, input forecast.ForecastInput) (model.Decision, error) {
	start := time.Now()
	in, err := uc.loadInput(ctx, input, uc.clock())
	if err != nil {
		observe("decision", start, err)
		return model.Decision{}, err
	}

	d, err := eng.Run(ctx, in)
	observe("decision", start, err)
	if err != nil {
		uc.l.Warnf(ctx, "internal.forecast.usecase.decide.Run: %v", err)
		return model.Decision{}, mapEngineError(err)
	}
	recordFallback(d.Forecast.Summary)
	return d, nil
}
