package usecase

import (
	"context"
	"encoding/json"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/model"
	"pulse-srv/internal/websocket"
	"pulse-srv/pkg/metrics"
)

// Raise persists the alerts of one run, then fans them out to the live
// stream and Discord. Fan-out failures are logged and never fail the call.
func (uc *implUseCase) Raise(ctx context.Context, input alert.RaiseInput) ([]model.Alert, error) {
	if input.Facility.HospitalID == "" {
		return nil, alert.ErrInvalidInput
	}
	if len(input.Alerts) == 0 {
		return nil, nil
	}

	alerts := make([]model.Alert, len(input.Alerts))
	for i, a := range input.Alerts {
		a.HospitalID = input.Facility.HospitalID
		a.Status = model.AlertStatusOpen
		if a.CreatedAt.IsZero() {
			a.CreatedAt = uc.clock().UTC()
		}
		alerts[i] = a
	}

	if err := uc.repo.Create(ctx, alerts); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.Raise.Create: %v", err)
		return nil, err
	}

	for _, a := range alerts {
		metrics.AlertsGenerated.WithLabelValues(string(a.Severity)).Inc()
		uc.publish(ctx, a)
		if err := uc.Dispatch(ctx, a); err != nil {
			uc.logger.Warnf(ctx, "internal.alert.usecase.Raise.Dispatch: alert=%s: %v", a.ID, err)
		}
	}

	uc.logger.Infof(ctx, "internal.alert.usecase.Raise: %d alerts for %s (risk %s, score %d)",
		len(alerts), input.Facility, input.Risk.Level, input.Risk.Score)
	return alerts, nil
}

func (uc *implUseCase) publish(ctx context.Context, a model.Alert) {
	if uc.redis == nil {
		return
	}
	b, err := json.Marshal(a)
	if err != nil {
		uc.logger.Warnf(ctx, "internal.alert.usecase.publish.Marshal: %v", err)
		return
	}
	if err := uc.redis.Publish(ctx, websocket.AlertChannel(a.HospitalID, string(a.Severity)), b); err != nil {
		uc.logger.Warnf(ctx, "internal.alert.usecase.publish.Publish: %v", err)
	}
}
