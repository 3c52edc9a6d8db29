package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/model"
)

func aqi(v float64) *float64 { return &v }

func baseline(values ...float64) []model.ForecastPoint {
	out := make([]model.ForecastPoint, len(values))
	for i, v := range values {
		out[i] = model.ForecastPoint{
			Date:           testDay.AddDate(0, 0, i+1),
			BaselineValue:  v,
			AdjustedValue:  v,
			ConfidenceLow:  v * 0.8,
			ConfidenceHigh: v * 1.2,
		}
	}
	return out
}

func TestAQIMultiplier(t *testing.T) {
	tests := []struct {
		aqi  float64
		want float64
	}{
		{aqi: 0, want: 1},
		{aqi: 150, want: 1},
		{aqi: 151, want: 1.1},
		{aqi: 200, want: 1.1},
		{aqi: 250, want: 1.1},
		{aqi: 300, want: 1.2},
		{aqi: 450, want: 1.5},
		{aqi: 1000, want: 1.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, AQIMultiplier(tt.aqi), 1e-9, "aqi %v", tt.aqi)
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name string
		in   ScenarioInput
		want float64
	}{
		{name: "baseline clean air", in: ScenarioInput{CurrentAQI: 80, Scenario: model.ScenarioBaseline}, want: 1},
		{name: "elevated aqi", in: ScenarioInput{CurrentAQI: 180}, want: 1.1},
		{name: "festival flag", in: ScenarioInput{CurrentAQI: 80, Festival: true}, want: 1.15},
		{name: "festival scenario", in: ScenarioInput{CurrentAQI: 80, Scenario: model.ScenarioFestival}, want: 1.15},
		{name: "legacy high_aqi", in: ScenarioInput{CurrentAQI: 80, Scenario: model.ScenarioHighAQI}, want: 1.2},
		{name: "legacy combined", in: ScenarioInput{CurrentAQI: 80, Scenario: model.ScenarioCombined}, want: 1.15 * 1.35},
		{
			name: "override disables legacy factors",
			in:   ScenarioInput{CurrentAQI: 80, AQIOverride: aqi(250), Festival: true, Scenario: model.ScenarioCombined},
			want: 1.1 * 1.15,
		},
		{
			name: "override replaces current reading",
			in:   ScenarioInput{CurrentAQI: 400, AQIOverride: aqi(50), Scenario: model.ScenarioHighAQI},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Multiplier(tt.in)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAdjust_CombinedWithOverride(t *testing.T) {
	in := ScenarioInput{CurrentAQI: 90, AQIOverride: aqi(250), Festival: true, Scenario: model.ScenarioCombined}
	points := baseline(100, 120, 80)

	got := Adjust(points, in)
	require.Len(t, got, 3)
	for i, p := range got {
		want := points[i].BaselineValue * AQIMultiplier(250) * 1.15
		assert.InDelta(t, want, p.AdjustedValue, 1e-9)
		assert.Equal(t, points[i].BaselineValue, p.BaselineValue)
		assert.LessOrEqual(t, p.ConfidenceLow, p.AdjustedValue)
		assert.LessOrEqual(t, p.AdjustedValue, p.ConfidenceHigh)
	}
}

func TestAdjust_Idempotent(t *testing.T) {
	in := ScenarioInput{CurrentAQI: 320, Festival: true, Scenario: model.ScenarioCombined}
	points := baseline(42, 43.5, 47.25, 51)
	original := make([]model.ForecastPoint, len(points))
	copy(original, points)

	first := Adjust(points, in)
	second := Adjust(points, in)

	assert.Equal(t, first, second)
	assert.Equal(t, original, points)
}

func TestAdjust_ZeroBaseline(t *testing.T) {
	got := Adjust(baseline(0, 0), ScenarioInput{CurrentAQI: 500, Festival: true})
	for _, p := range got {
		assert.Equal(t, 0.0, p.AdjustedValue)
		assert.Equal(t, 0.0, p.ConfidenceLow)
	}
}

func TestSummarize(t *testing.T) {
	points := baseline(10, 30, 30, 20)

	s := Summarize(points, model.ModelSourceTrend, ScenarioInput{CurrentAQI: 50})

	assert.InDelta(t, 22.5, s.AverageAdjusted, 1e-9)
	assert.InDelta(t, 22.5, s.AverageBaseline, 1e-9)
	assert.Equal(t, 30.0, s.PeakValue)
	assert.Equal(t, points[1].Date, s.PeakDate)
	assert.Equal(t, model.ScenarioBaseline, s.Scenario)
	assert.Equal(t, model.ModelSourceTrend, s.ModelSource)
	assert.NotEmpty(t, s.Explanation)
	assert.NotEmpty(t, s.Methodology)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, model.ModelSourceTrend, ScenarioInput{})
	assert.Equal(t, 0.0, s.PeakValue)
	assert.Equal(t, 0.0, s.SurgePct())
}
