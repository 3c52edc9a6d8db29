package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pulse-srv/internal/model"
)

const (
	surgeAlertThreshold     = 20.0
	surgeHighThreshold      = 35.0
	surgeCriticalThreshold  = 50.0
	festivalImpactThreshold = 15.0
	maxFestivalAlerts       = 3
	pollutionAlertScore     = 60.0
	pollutionCriticalScore  = 80.0
)

// AlertInput carries the signals the thresholds are evaluated against.
type AlertInput struct {
	Risk      model.RiskAssessment
	Summary   model.ForecastSummary
	Pollution model.PollutionAnalysis
	Epidemic  model.EpidemicAnalysis
	Festival  model.FestivalAnalysis
	Now       time.Time
}

// AlertRanker emits threshold alerts and orders them by severity.
type AlertRanker struct {
	newID func() string
}

// NewAlertRanker uses random UUIDs when newID is nil.
func NewAlertRanker(newID func() string) AlertRanker {
	if newID == nil {
		newID = uuid.NewString
	}
	return AlertRanker{newID: newID}
}

// Generate returns the ranked alerts for one run.
func (r AlertRanker) Generate(in AlertInput) []model.Alert {
	var alerts []model.Alert
	add := func(a model.Alert) {
		a.ID = r.newID()
		a.CreatedAt = in.Now
		a.Status = model.AlertStatusOpen
		alerts = append(alerts, a)
	}

	surge := in.Risk.SurgePct
	if surge > surgeAlertThreshold {
		sev := model.SeverityMedium
		switch {
		case surge > surgeCriticalThreshold:
			sev = model.SeverityCritical
		case surge > surgeHighThreshold:
			sev = model.SeverityHigh
		}
		add(model.Alert{
			Type:     model.AlertTypePatientSurge,
			Severity: sev,
			Title:    fmt.Sprintf("Patient Surge Alert: %.1f%% Increase Expected", surge),
			Message:  fmt.Sprintf("Predicted patient surge of %.1f%% over the forecast horizon. Risk level: %s", surge, strings.ToUpper(string(in.Risk.Level))),
			Metrics: map[string]any{
				"surge_percentage": surge,
				"peak_value":       in.Summary.PeakValue,
				"risk_level":       in.Risk.Level,
			},
		})
	}

	count := 0
	for _, f := range in.Festival.Upcoming {
		if count == maxFestivalAlerts {
			break
		}
		count++
		if f.ExpectedImpact <= festivalImpactThreshold {
			continue
		}
		add(model.Alert{
			Type:     model.AlertTypeFestivalImpact,
			Severity: model.SeverityMedium,
			Title:    fmt.Sprintf("Festival Alert: %s", f.Name),
			Message:  fmt.Sprintf("%s on %s may cause %.1f%% increase in patient load", f.Name, f.Date.Format("2006-01-02"), f.ExpectedImpact),
			Metrics: map[string]any{
				"festival_name":   f.Name,
				"expected_impact": f.ExpectedImpact,
				"days_until":      int(day(f.Date).Sub(day(in.Now)).Hours() / 24),
			},
		})
	}

	if score := in.Pollution.RiskScore; score > pollutionAlertScore {
		sev := model.SeverityHigh
		if score > pollutionCriticalScore {
			sev = model.SeverityCritical
		}
		add(model.Alert{
			Type:     model.AlertTypePollutionRisk,
			Severity: sev,
			Title:    fmt.Sprintf("Air Quality Alert: AQI %.0f (%s)", in.Pollution.AQI, in.Pollution.Category),
			Message:  fmt.Sprintf("Air quality may increase respiratory admissions (%s).", strings.Join(in.Pollution.AffectedConditions, ", ")),
			Metrics: map[string]any{
				"aqi":                  in.Pollution.AQI,
				"pollution_risk_score": score,
				"multiplier":           in.Pollution.Multiplier,
			},
		})
	}

	if in.Epidemic.Active && (in.Epidemic.Severity == model.SeverityHigh || in.Epidemic.Severity == model.SeverityCritical) {
		diseases := strings.Join(in.Epidemic.Diseases, ", ")
		add(model.Alert{
			Type:     model.AlertTypeEpidemic,
			Severity: in.Epidemic.Severity,
			Title:    fmt.Sprintf("Epidemic Alert: %s", diseases),
			Message:  fmt.Sprintf("Active %s outbreak with %s severity. Activate infection control protocols.", diseases, in.Epidemic.Severity),
			Metrics: map[string]any{
				"diseases":   in.Epidemic.Diseases,
				"multiplier": in.Epidemic.Multiplier,
				"source":     in.Epidemic.Source,
			},
		})
	}

	return Rank(alerts)
}

// Rank orders alerts critical first. Equal severities keep their input order.
func Rank(alerts []model.Alert) []model.Alert {
	out := make([]model.Alert, len(alerts))
	copy(out, alerts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Order() < out[j].Severity.Order()
	})
	return out
}
