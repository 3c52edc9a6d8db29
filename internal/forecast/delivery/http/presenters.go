package http

import (
	"strings"

	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/errors"
	"pulse-srv/pkg/response"
)

const maxHorizon = 90

// FacilityReq is shared by every endpoint. An empty hospital defaults to the
// caller's own hospital.
type FacilityReq struct {
	HospitalID   string `form:"hospital_id" json:"hospital_id"`
	DepartmentID string `form:"department_id" json:"department_id"`
	Horizon      int    `form:"horizon" json:"horizon"`
}

type ForecastReq struct {
	FacilityReq
	Scenario string   `form:"scenario" json:"scenario"`
	AQI      *float64 `form:"aqi" json:"aqi"`
	Festival *bool    `form:"festival" json:"festival"`
}

func (r FacilityReq) validate(collector *errors.ValidationErrorCollector) {
	if r.Horizon < 0 || r.Horizon > maxHorizon {
		collector.Add(errors.NewValidationError(400, "horizon", "must be between 0 and 90"))
	}
}

func (r ForecastReq) validate() error {
	collector := errors.NewValidationErrorCollector()
	r.FacilityReq.validate(collector)
	if s := model.Scenario(strings.ToLower(r.Scenario)); s != "" && !s.IsValid() {
		collector.Add(errors.NewValidationError(400, "scenario", "must be baseline, high_aqi, festival or combined"))
	}
	if r.AQI != nil && (*r.AQI < 0 || *r.AQI > 1000) {
		collector.Add(errors.NewValidationError(400, "aqi", "must be between 0 and 1000"))
	}
	if collector.HasError() {
		return collector
	}
	return nil
}

func (r FacilityReq) facility(sc model.Scope) model.Facility {
	hospitalID := r.HospitalID
	if hospitalID == "" {
		hospitalID = sc.HospitalID
	}
	return model.Facility{HospitalID: hospitalID, DepartmentID: r.DepartmentID}
}

func (r ForecastReq) toInput(sc model.Scope) forecast.ForecastInput {
	return forecast.ForecastInput{
		Facility:    r.facility(sc),
		Horizon:     r.Horizon,
		Scenario:    model.Scenario(strings.ToLower(r.Scenario)),
		AQIOverride: r.AQI,
		Festival:    r.Festival,
	}
}

func (r FacilityReq) toScenariosInput(sc model.Scope) forecast.ScenariosInput {
	return forecast.ScenariosInput{Facility: r.facility(sc), Horizon: r.Horizon}
}

type pointResp struct {
	Date           response.Date `json:"date"`
	BaselineValue  float64       `json:"baseline_value"`
	AdjustedValue  float64       `json:"adjusted_value"`
	ConfidenceLow  float64       `json:"confidence_low"`
	ConfidenceHigh float64       `json:"confidence_high"`
}

type summaryResp struct {
	AverageAdjusted float64       `json:"average_adjusted"`
	AverageBaseline float64       `json:"average_baseline"`
	PeakValue       float64       `json:"peak_value"`
	PeakDate        response.Date `json:"peak_date"`
	SurgePct        float64       `json:"surge_pct"`
	ModelSource     string        `json:"model_source"`
	Scenario        string        `json:"scenario"`
	AQIUsed         float64       `json:"aqi_used"`
	Multiplier      float64       `json:"multiplier"`
	Explanation     string        `json:"explanation"`
	Methodology     string        `json:"methodology"`
	FallbackReason  string        `json:"fallback_reason,omitempty"`
}

type forecastResp struct {
	Points  []pointResp `json:"points"`
	Summary summaryResp `json:"summary"`
}

type decisionResp struct {
	Facility        model.Facility          `json:"facility"`
	Forecast        forecastResp            `json:"forecast"`
	Risk            model.RiskAssessment    `json:"risk"`
	Shortage        model.ShortageEstimate  `json:"shortage"`
	Actions         model.ActionPlan        `json:"actions"`
	Alerts          []model.Alert           `json:"alerts"`
	Recommendations []model.Recommendation  `json:"recommendations"`
	Pollution       model.PollutionAnalysis `json:"pollution"`
	Epidemic        model.EpidemicAnalysis  `json:"epidemic"`
	Festival        model.FestivalAnalysis  `json:"festival"`
	Narrative       string                  `json:"narrative,omitempty"`
	GeneratedAt     response.DateTime       `json:"generated_at"`
}

type scenarioResp struct {
	Scenario string                 `json:"scenario"`
	Summary  summaryResp            `json:"summary"`
	Risk     model.RiskAssessment   `json:"risk"`
	Shortage model.ShortageEstimate `json:"shortage"`
}

type reportResp struct {
	Bucket     string            `json:"bucket"`
	ObjectName string            `json:"object_name"`
	FileName   string            `json:"file_name"`
	Size       int64             `json:"size"`
	URL        string            `json:"url"`
	ExpiresAt  response.DateTime `json:"expires_at"`
}

func newSummaryResp(s model.ForecastSummary) summaryResp {
	return summaryResp{
		AverageAdjusted: s.AverageAdjusted,
		AverageBaseline: s.AverageBaseline,
		PeakValue:       s.PeakValue,
		PeakDate:        response.Date(s.PeakDate),
		SurgePct:        s.SurgePct(),
		ModelSource:     string(s.ModelSource),
		Scenario:        string(s.Scenario),
		AQIUsed:         s.AQIUsed,
		Multiplier:      s.Multiplier,
		Explanation:     s.Explanation,
		Methodology:     s.Methodology,
		FallbackReason:  s.FallbackReason,
	}
}

func (h Handler) newForecastResp(f model.Forecast) forecastResp {
	points := make([]pointResp, len(f.Points))
	for i, p := range f.Points {
		points[i] = pointResp{
			Date:           response.Date(p.Date),
			BaselineValue:  p.BaselineValue,
			AdjustedValue:  p.AdjustedValue,
			ConfidenceLow:  p.ConfidenceLow,
			ConfidenceHigh: p.ConfidenceHigh,
		}
	}
	return forecastResp{Points: points, Summary: newSummaryResp(f.Summary)}
}

func (h Handler) newDecisionResp(d model.Decision) decisionResp {
	alerts := d.Alerts
	if alerts == nil {
		alerts = []model.Alert{}
	}
	return decisionResp{
		Facility:        d.Facility,
		Forecast:        h.newForecastResp(d.Forecast),
		Risk:            d.Risk,
		Shortage:        d.Shortage,
		Actions:         d.Actions,
		Alerts:          alerts,
		Recommendations: d.Recommendations,
		Pollution:       d.Pollution,
		Epidemic:        d.Epidemic,
		Festival:        d.Festival,
		Narrative:       d.Narrative,
		GeneratedAt:     response.DateTime(d.GeneratedAt),
	}
}

func (h Handler) newScenariosResp(results []forecast.ScenarioResult) []scenarioResp {
	res := make([]scenarioResp, len(results))
	for i, r := range results {
		res[i] = scenarioResp{
			Scenario: string(r.Scenario),
			Summary:  newSummaryResp(r.Summary),
			Risk:     r.Risk,
			Shortage: r.Shortage,
		}
	}
	return res
}

func (h Handler) newReportResp(o forecast.ReportOutput) reportResp {
	return reportResp{
		Bucket:     o.Bucket,
		ObjectName: o.ObjectName,
		FileName:   o.FileName,
		Size:       o.Size,
		URL:        o.URL,
		ExpiresAt:  response.DateTime(o.ExpiresAt),
	}
}
