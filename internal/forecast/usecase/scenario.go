package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
)

const scenarioAQI = 250.0

// Scenarios evaluates every scenario against one snapshot of the inputs.
func (uc *implUseCase) Scenarios(ctx context.Context, sc model.Scope, input forecast.ScenariosInput) ([]forecast.ScenarioResult, error) {
	if err := uc.authorize(sc, input.Facility); err != nil {
		return nil, err
	}
	fi := uc.normalize(forecast.ForecastInput{Facility: input.Facility, Horizon: input.Horizon})

	start := time.Now()
	base, err := uc.loadInput(ctx, fi, uc.clock())
	if err != nil {
		observe("scenarios", start, err)
		return nil, err
	}

	eng := uc.engine.WithoutAdvisor()
	results := make([]forecast.ScenarioResult, len(model.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range model.Scenarios {
		in := scenarioInput(base, s)
		g.Go(func() error {
			d, err := eng.Run(gctx, in)
			if err != nil {
				return err
			}
			results[i] = forecast.ScenarioResult{
				Scenario: s,
				Summary:  d.Forecast.Summary,
				Risk:     d.Risk,
				Shortage: d.Shortage,
			}
			return nil
		})
	}
	err = g.Wait()
	observe("scenarios", start, err)
	if err != nil {
		uc.l.Warnf(ctx, "internal.forecast.usecase.Scenarios.Run: %v", err)
		return nil, mapEngineError(err)
	}
	return results, nil
}

// scenarioInput fixes the knobs of one comparison column. The AQI columns
// use a fixed reading so they compare against the same pollution level.
func scenarioInput(base engine.Input, s model.Scenario) engine.Input {
	in := base
	in.Scenario = s
	if s == model.ScenarioHighAQI || s == model.ScenarioCombined {
		aqi := scenarioAQI
		in.AQIOverride = &aqi
	}
	if s == model.ScenarioFestival || s == model.ScenarioCombined {
		in.Context.FestivalFlag = true
	}
	return in
}
