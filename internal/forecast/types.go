package forecast

import (
	"time"

	"pulse-srv/internal/model"
)

// ForecastInput selects a facility and the scenario knobs of one request.
// Nil overrides fall back to the stored context signal.
type ForecastInput struct {
	Facility    model.Facility
	Horizon     int
	Scenario    model.Scenario
	AQIOverride *float64
	Festival    *bool
}

// IsDefault reports whether the request carries no scenario overrides.
func (in ForecastInput) IsDefault() bool {
	return (in.Scenario == "" || in.Scenario == model.ScenarioBaseline) &&
		in.AQIOverride == nil && in.Festival == nil
}

type ScenariosInput struct {
	Facility model.Facility
	Horizon  int
}

// ScenarioResult is one column of the scenario comparison.
type ScenarioResult struct {
	Scenario model.Scenario
	Summary  model.ForecastSummary
	Risk     model.RiskAssessment
	Shortage model.ShortageEstimate
}

type ReportOutput struct {
	Bucket     string
	ObjectName string
	FileName   string
	Size       int64
	URL        string
	ExpiresAt  time.Time
}

type RunInput struct {
	Facility model.Facility
	Horizon  int
}

// Config tunes the use case.
type Config struct {
	DefaultHorizon  int
	HistoryWindow   int
	CacheTTL        time.Duration
	ReportBucket    string
	ReportURLExpiry time.Duration
	ModelVersion    string
}
