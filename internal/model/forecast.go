package model

import "time"

// ModelSource names the model that produced a forecast.
type ModelSource string

const (
	ModelSourceTrend    ModelSource = "trend_fallback"
	ModelSourceExternal ModelSource = "external_model"
)

// Scenario selects the external-factor adjustments to apply.
type Scenario string

const (
	ScenarioBaseline Scenario = "baseline"
	ScenarioHighAQI  Scenario = "high_aqi"
	ScenarioFestival Scenario = "festival"
	ScenarioCombined Scenario = "combined"
)

// Scenarios lists every supported scenario in presentation order.
var Scenarios = []Scenario{ScenarioBaseline, ScenarioHighAQI, ScenarioFestival, ScenarioCombined}

// IsValid reports whether s is a known scenario.
func (s Scenario) IsValid() bool {
	switch s {
	case ScenarioBaseline, ScenarioHighAQI, ScenarioFestival, ScenarioCombined:
		return true
	}
	return false
}

// FeatureRow is one day of the aggregated feature frame.
type FeatureRow struct {
	Date          time.Time `json:"date"`
	Admissions    float64   `json:"admissions"`
	HasAdmissions bool      `json:"has_admissions"`
	AQI           float64   `json:"aqi"`
	OccupiedBeds  float64   `json:"occupied_beds"`
	TotalBeds     float64   `json:"total_beds"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	IsHoliday     bool      `json:"is_holiday"`
	EventName     string    `json:"event_name"`
}

// FeatureFrame is a chronologically ordered, one-row-per-day view of all signals.
type FeatureFrame struct {
	Rows []FeatureRow `json:"rows"`
}

// Len returns the number of days in the frame.
func (f FeatureFrame) Len() int {
	return len(f.Rows)
}

// Latest returns the most recent row and false when the frame is empty.
func (f FeatureFrame) Latest() (FeatureRow, bool) {
	if len(f.Rows) == 0 {
		return FeatureRow{}, false
	}
	return f.Rows[len(f.Rows)-1], true
}

// History returns the observed admission counts in date order.
func (f FeatureFrame) History() []HistoryPoint {
	points := make([]HistoryPoint, 0, len(f.Rows))
	for _, r := range f.Rows {
		if !r.HasAdmissions {
			continue
		}
		points = append(points, HistoryPoint{Date: r.Date, Count: r.Admissions})
	}
	return points
}

// ForecastPoint is a projected day. ConfidenceLow <= AdjustedValue <= ConfidenceHigh.
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	BaselineValue  float64   `json:"baseline_value"`
	AdjustedValue  float64   `json:"adjusted_value"`
	ConfidenceLow  float64   `json:"confidence_low"`
	ConfidenceHigh float64   `json:"confidence_high"`
}

// ForecastSummary aggregates a forecast over its horizon.
type ForecastSummary struct {
	AverageAdjusted float64     `json:"average_adjusted"`
	AverageBaseline float64     `json:"average_baseline"`
	PeakValue       float64     `json:"peak_value"`
	PeakDate        time.Time   `json:"peak_date"`
	ModelSource     ModelSource `json:"model_source"`
	Scenario        Scenario    `json:"scenario"`
	AQIUsed         float64     `json:"aqi_used"`
	Multiplier      float64     `json:"multiplier"`
	Explanation     string      `json:"explanation"`
	Methodology     string      `json:"methodology"`
	FallbackReason  string      `json:"fallback_reason,omitempty"`
}

// SurgePct is the percentage increase of the peak over the average baseline.
func (s ForecastSummary) SurgePct() float64 {
	if s.AverageBaseline <= 0 {
		return 0
	}
	return (s.PeakValue - s.AverageBaseline) / s.AverageBaseline * 100
}

// Forecast is the full forecaster output.
type Forecast struct {
	Points  []ForecastPoint `json:"points"`
	Summary ForecastSummary `json:"summary"`
}
