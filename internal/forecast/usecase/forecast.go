package usecase

import (
	"context"
	"time"

	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
)

func (uc *implUseCase) Forecast(ctx context.Context, sc model.Scope, input forecast.ForecastInput) (model.Forecast, error) {
	if err := uc.authorize(sc, input.Facility); err != nil {
		return model.Forecast{}, err
	}
	input = uc.normalize(input)

	start := time.Now()
	in, err := uc.loadInput(ctx, input, uc.clock())
	if err != nil {
		observe("forecast", start, err)
		return model.Forecast{}, err
	}

	fc, _, err := uc.engine.Forecast(ctx, in)
	observe("forecast", start, err)
	if err != nil {
		uc.l.Warnf(ctx, "internal.forecast.usecase.Forecast.Forecast: %v", err)
		return model.Forecast{}, mapEngineError(err)
	}

	recordFallback(fc.Summary)
	if fc.Summary.FallbackReason != "" {
		uc.l.Infof(ctx, "internal.forecast.usecase.Forecast: %s fell back: %s", input.Facility, fc.Summary.FallbackReason)
	}
	return fc, nil
}
