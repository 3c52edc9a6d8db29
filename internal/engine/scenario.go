package engine

import (
	"fmt"
	"math"
	"strings"

	"pulse-srv/internal/model"
)

const (
	aqiSevereThreshold   = 200.0
	aqiElevatedThreshold = 150.0
	aqiSevereSpan        = 500.0
	aqiMaxMultiplier     = 1.5
	aqiElevatedFactor    = 1.1
	festivalFactor       = 1.15
	legacyHighAQIFactor  = 1.2
	legacyCombinedFactor = 1.35
)

// ScenarioInput describes the external factors for one adjustment run.
// AQIOverride, when set, replaces CurrentAQI and disables legacy scenario factors.
type ScenarioInput struct {
	CurrentAQI  float64
	AQIOverride *float64
	Festival    bool
	Scenario    model.Scenario
}

// EffectiveAQI returns the AQI the multipliers are computed from.
func (in ScenarioInput) EffectiveAQI() float64 {
	if in.AQIOverride != nil {
		return *in.AQIOverride
	}
	return in.CurrentAQI
}

// AQIMultiplier is the pollution factor for a reading.
func AQIMultiplier(aqi float64) float64 {
	switch {
	case aqi > aqiSevereThreshold:
		return math.Min(aqiMaxMultiplier, 1+(aqi-aqiSevereThreshold)/aqiSevereSpan)
	case aqi > aqiElevatedThreshold:
		return aqiElevatedFactor
	default:
		return 1
	}
}

// Multiplier composes every applicable factor by multiplication.
func Multiplier(in ScenarioInput) (float64, []string) {
	aqi := in.EffectiveAQI()
	m := 1.0
	var notes []string

	if f := AQIMultiplier(aqi); f != 1 {
		m *= f
		notes = append(notes, fmt.Sprintf("AQI %.0f adds x%.2f", aqi, f))
	}
	if in.Festival || in.Scenario == model.ScenarioFestival || in.Scenario == model.ScenarioCombined {
		m *= festivalFactor
		notes = append(notes, fmt.Sprintf("festival adds x%.2f", festivalFactor))
	}
	if in.AQIOverride == nil {
		switch in.Scenario {
		case model.ScenarioHighAQI:
			m *= legacyHighAQIFactor
			notes = append(notes, fmt.Sprintf("high_aqi scenario adds x%.2f", legacyHighAQIFactor))
		case model.ScenarioCombined:
			m *= legacyCombinedFactor
			notes = append(notes, fmt.Sprintf("combined scenario adds x%.2f", legacyCombinedFactor))
		}
	}
	return m, notes
}

// Adjust returns a new slice with the multiplier applied to every baseline
// value and its band. The input is never modified.
func Adjust(points []model.ForecastPoint, in ScenarioInput) []model.ForecastPoint {
	m, _ := Multiplier(in)
	out := make([]model.ForecastPoint, len(points))
	for i, p := range points {
		out[i] = model.ForecastPoint{
			Date:           p.Date,
			BaselineValue:  p.BaselineValue,
			AdjustedValue:  math.Max(0, p.BaselineValue*m),
			ConfidenceLow:  math.Max(0, p.ConfidenceLow*m),
			ConfidenceHigh: math.Max(0, p.ConfidenceHigh*m),
		}
	}
	return out
}

// Summarize computes averages and the peak over adjusted values.
func Summarize(points []model.ForecastPoint, source model.ModelSource, in ScenarioInput) model.ForecastSummary {
	m, notes := Multiplier(in)
	scenario := in.Scenario
	if scenario == "" {
		scenario = model.ScenarioBaseline
	}
	s := model.ForecastSummary{
		ModelSource: source,
		Scenario:    scenario,
		AQIUsed:     in.EffectiveAQI(),
		Multiplier:  m,
	}
	if len(points) == 0 {
		return s
	}

	var sumAdj, sumBase float64
	s.PeakValue = math.Inf(-1)
	for _, p := range points {
		sumAdj += p.AdjustedValue
		sumBase += p.BaselineValue
		if p.AdjustedValue > s.PeakValue {
			s.PeakValue = p.AdjustedValue
			s.PeakDate = p.Date
		}
	}
	n := float64(len(points))
	s.AverageAdjusted = sumAdj / n
	s.AverageBaseline = sumBase / n

	if len(notes) == 0 {
		s.Explanation = fmt.Sprintf("No external factor applied; forecast follows the %s baseline.", source)
	} else {
		s.Explanation = fmt.Sprintf("Baseline scaled by x%.2f: %s.", m, strings.Join(notes, ", "))
	}
	switch source {
	case model.ModelSourceExternal:
		s.Methodology = "External time-series model with scenario multipliers."
	default:
		s.Methodology = "Linear trend over recent history with a 1.5 sigma residual band and scenario multipliers."
	}
	return s
}
