package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"pulse-srv/internal/model"
)

// Baseline is the unadjusted projection. AdjustedValue equals BaselineValue
// on every point until the scenario adjuster runs.
type Baseline struct {
	Points         []model.ForecastPoint
	Source         model.ModelSource
	ResidualStd    float64
	HistoryUsed    int
	FallbackReason string
}

// TrendForecaster projects admissions with an OLS trend and a residual-based
// confidence band, optionally preferring an external model.
type TrendForecaster struct {
	cfg      Config
	external ExternalModel
}

// NewTrendForecaster builds a forecaster. external may be nil.
func NewTrendForecaster(cfg Config, external ExternalModel) TrendForecaster {
	return TrendForecaster{cfg: cfg.withDefaults(), external: external}
}

// Forecast projects horizon days after the last history date, or after today
// when history is empty. A zero horizon uses the configured default.
func (f TrendForecaster) Forecast(ctx context.Context, history []model.HistoryPoint, horizon int, today time.Time) (Baseline, error) {
	if horizon < 0 {
		return Baseline{}, invalid("horizon", "must not be negative")
	}
	if horizon == 0 {
		horizon = f.cfg.Horizon
	}
	for _, p := range history {
		if p.Count < 0 || math.IsNaN(p.Count) {
			return Baseline{}, invalid("history.count", fmt.Sprintf("must not be negative, got %v on %s", p.Count, p.Date.Format("2006-01-02")))
		}
	}

	if len(history) == 0 {
		return f.constant(horizon, day(today)), nil
	}

	sorted := make([]model.HistoryPoint, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	start := day(sorted[len(sorted)-1].Date)

	var reason string
	if f.external != nil && len(sorted) >= f.cfg.MinExternalPoints {
		pts, err := f.external.Predict(ctx, sorted, horizon)
		if err == nil {
			err = validateExternal(pts, horizon)
		}
		if err == nil {
			return Baseline{
				Points:      normalizeExternal(pts, start),
				Source:      model.ModelSourceExternal,
				HistoryUsed: len(sorted),
			}, nil
		}
		reason = err.Error()
	}

	b := f.trend(sorted, horizon, start)
	b.FallbackReason = reason
	return b, nil
}

func (f TrendForecaster) constant(horizon int, start time.Time) Baseline {
	v := f.cfg.FallbackValue
	band := v * f.cfg.FallbackBand
	pts := make([]model.ForecastPoint, horizon)
	for i := range pts {
		pts[i] = model.ForecastPoint{
			Date:           start.AddDate(0, 0, i+1),
			BaselineValue:  v,
			AdjustedValue:  v,
			ConfidenceLow:  math.Max(0, v-band),
			ConfidenceHigh: v + band,
		}
	}
	return Baseline{Points: pts, Source: model.ModelSourceTrend}
}

func (f TrendForecaster) trend(history []model.HistoryPoint, horizon int, start time.Time) Baseline {
	n := len(history)
	if n > f.cfg.HistoryWindow {
		history = history[n-f.cfg.HistoryWindow:]
		n = len(history)
	}

	y := make([]float64, n)
	for i, p := range history {
		y[i] = p.Count
	}
	slope, intercept := linearFit(y)

	residuals := make([]float64, n)
	for i, v := range y {
		residuals[i] = v - (intercept + slope*float64(i))
	}

	sigma := sampleStd(residuals)
	if n < 2 {
		sigma = sampleStd(y)
	}
	if !usable(sigma) {
		sigma = f.cfg.MinNoise
	}

	spread := f.cfg.ConfidenceZ * sigma
	pts := make([]model.ForecastPoint, horizon)
	for i := range pts {
		v := math.Max(0, intercept+slope*float64(n+i))
		pts[i] = model.ForecastPoint{
			Date:           start.AddDate(0, 0, i+1),
			BaselineValue:  v,
			AdjustedValue:  v,
			ConfidenceLow:  math.Max(0, v-spread),
			ConfidenceHigh: v + spread,
		}
	}

	return Baseline{
		Points:      pts,
		Source:      model.ModelSourceTrend,
		ResidualStd: sigma,
		HistoryUsed: n,
	}
}

func validateExternal(pts []model.ForecastPoint, horizon int) error {
	if len(pts) != horizon {
		return fmt.Errorf("external model returned %d points, want %d", len(pts), horizon)
	}
	for i, p := range pts {
		for _, v := range []float64{p.BaselineValue, p.ConfidenceLow, p.ConfidenceHigh} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("external model returned non-finite value at %d", i)
			}
		}
	}
	return nil
}

// normalizeExternal re-dates the points after start and restores the band
// ordering and non-negativity the rest of the pipeline relies on.
func normalizeExternal(pts []model.ForecastPoint, start time.Time) []model.ForecastPoint {
	out := make([]model.ForecastPoint, len(pts))
	for i, p := range pts {
		v := math.Max(0, p.BaselineValue)
		lo := math.Max(0, math.Min(p.ConfidenceLow, v))
		hi := math.Max(p.ConfidenceHigh, v)
		out[i] = model.ForecastPoint{
			Date:           start.AddDate(0, 0, i+1),
			BaselineValue:  v,
			AdjustedValue:  v,
			ConfidenceLow:  lo,
			ConfidenceHigh: hi,
		}
	}
	return out
}
