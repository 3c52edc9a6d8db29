package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/internal/signal/repository"
	"pulse-srv/pkg/metrics"
)

func (uc *implUseCase) Run(ctx context.Context, input forecast.RunInput) (model.Decision, error) {
	fi := uc.normalize(forecast.ForecastInput{Facility: input.Facility, Horizon: input.Horizon})
	if fi.Facility.HospitalID == "" {
		return model.Decision{}, forecast.ErrInvalidInput
	}

	d, err := uc.decide(ctx, uc.engine, fi)
	if err != nil {
		return model.Decision{}, err
	}

	if err := uc.repo.SaveForecast(ctx, repository.SaveForecastOptions{
		Facility:     fi.Facility,
		Points:       d.Forecast.Points,
		ModelVersion: uc.cfg.ModelVersion,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.forecast.usecase.Run.SaveForecast: %v", err)
		return model.Decision{}, err
	}

	if err := uc.repo.SaveShortage(ctx, repository.SaveShortageOptions{
		Facility:    fi.Facility,
		HorizonDate: horizonDate(d, fi.Horizon),
		Shortage:    d.Shortage,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.forecast.usecase.Run.SaveShortage: %v", err)
		return model.Decision{}, err
	}

	if d.Risk.Level.IsElevated() && uc.alertUC != nil {
		alerts := engine.Rank(append([]model.Alert{riskAlert(d)}, d.Alerts...))
		raised, err := uc.alertUC.Raise(ctx, alert.RaiseInput{Facility: fi.Facility, Risk: d.Risk, Alerts: alerts})
		if err != nil {
			uc.l.Errorf(ctx, "internal.forecast.usecase.Run.Raise: %v", err)
			return model.Decision{}, err
		}
		d.Alerts = raised
	}

	uc.cacheDecision(ctx, fi.Horizon, d)
	metrics.RiskLevel.WithLabelValues(fi.Facility.HospitalID, fi.Facility.DepartmentID).Set(float64(d.Risk.Level.Rank()))

	return d, nil
}

// horizonDate is the last forecast day, or now plus the horizon without points.
func horizonDate(d model.Decision, horizon int) time.Time {
	if n := len(d.Forecast.Points); n > 0 {
		return d.Forecast.Points[n-1].Date
	}
	return d.GeneratedAt.AddDate(0, 0, horizon)
}

// riskAlert records the elevated risk level itself, so a level driven by a
// single factor below every threshold alert is still persisted.
func riskAlert(d model.Decision) model.Alert {
	sev := model.SeverityHigh
	if d.Risk.Level == model.RiskCritical {
		sev = model.SeverityCritical
	}
	return model.Alert{
		HospitalID: d.Facility.HospitalID,
		Type:       model.AlertTypeOperationalRisk,
		Severity:   sev,
		Title:      fmt.Sprintf("Operational Risk: %s", d.Risk.Level),
		Message: strings.TrimSpace(fmt.Sprintf("Scheduled run for %s detected %s risk (score %d). %s",
			d.Facility, d.Risk.Level, d.Risk.Score, strings.Join(d.Risk.Breakdown, "; "))),
		Metrics: map[string]any{
			"risk_level":          d.Risk.Level,
			"risk_score":          d.Risk.Score,
			"projected_occupancy": d.Risk.ProjectedOccupancy,
			"surge_percentage":    d.Risk.SurgePct,
		},
		Status:    model.AlertStatusOpen,
		CreatedAt: d.GeneratedAt,
	}
}
