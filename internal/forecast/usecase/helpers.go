package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/metrics"
	pkgRedis "pulse-srv/pkg/redis"
)

const decisionKeyPrefix = "pulse:decision"

func (uc *implUseCase) authorize(sc model.Scope, f model.Facility) error {
	if f.HospitalID == "" {
		return fmt.Errorf("%w: hospital_id is required", forecast.ErrInvalidInput)
	}
	if !sc.CanAccessHospital(f.HospitalID) {
		return forecast.ErrForbidden
	}
	return nil
}

func (uc *implUseCase) normalize(input forecast.ForecastInput) forecast.ForecastInput {
	if input.Horizon == 0 {
		input.Horizon = uc.cfg.DefaultHorizon
	}
	return input
}

// mapEngineError turns engine validation failures into the domain sentinel.
func mapEngineError(err error) error {
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s %s", forecast.ErrInvalidInput, invalid.Field, invalid.Reason)
	}
	return err
}

func observe(kind string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.PipelineRuns.WithLabelValues(kind, result).Inc()
	metrics.PipelineDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func recordFallback(s model.ForecastSummary) {
	if s.ModelSource == model.ModelSourceTrend {
		metrics.ForecastFallbacks.WithLabelValues(string(s.ModelSource)).Inc()
	}
}

func decisionKey(f model.Facility, horizon int) string {
	return fmt.Sprintf("%s:%s:%s:%d", decisionKeyPrefix, f.HospitalID, f.DepartmentID, horizon)
}

func (uc *implUseCase) cachedDecision(ctx context.Context, f model.Facility, horizon int) (model.Decision, bool) {
	if uc.redis == nil {
		return model.Decision{}, false
	}
	raw, err := uc.redis.Get(ctx, decisionKey(f, horizon))
	if err != nil {
		if !pkgRedis.IsNil(err) {
			uc.l.Warnf(ctx, "internal.forecast.usecase.cachedDecision.Get: %v", err)
		}
		return model.Decision{}, false
	}
	var d model.Decision
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		uc.l.Warnf(ctx, "internal.forecast.usecase.cachedDecision.Unmarshal: %v", err)
		return model.Decision{}, false
	}
	return d, true
}

func (uc *implUseCase) cacheDecision(ctx context.Context, horizon int, d model.Decision) {
	if uc.redis == nil {
		return
	}
	b, err := json.Marshal(d)
	if err != nil {
		uc.l.Warnf(ctx, "internal.forecast.usecase.cacheDecision.Marshal: %v", err)
		return
	}
	if err := uc.redis.Set(ctx, decisionKey(d.Facility, horizon), string(b), uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "internal.forecast.usecase.cacheDecision.Set: %v", err)
	}
}
