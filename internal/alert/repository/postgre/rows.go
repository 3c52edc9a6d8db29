package postgres

import (
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"

	"pulse-srv/internal/model"
)

type alertRow struct {
	ID          string      `boil:"id"`
	TS          time.Time   `boil:"ts"`
	HospitalID  string      `boil:"hospital_id"`
	Type        string      `boil:"type"`
	Severity    string      `boil:"severity"`
	Title       string      `boil:"title"`
	Message     string      `boil:"message"`
	MetricsJSON null.JSON   `boil:"metrics_json"`
	Status      string      `boil:"status"`
	AckBy       null.String `boil:"ack_by"`
	AckTS       null.Time   `boil:"ack_ts"`
}

type countRow struct {
	Total int64 `boil:"total"`
}

func (r alertRow) toModel() model.Alert {
	a := model.Alert{
		ID:         r.ID,
		HospitalID: r.HospitalID,
		Type:       model.AlertType(r.Type),
		Severity:   model.AlertSeverity(r.Severity),
		Title:      r.Title,
		Message:    r.Message,
		Status:     model.AlertStatus(r.Status),
		CreatedAt:  r.TS.UTC(),
		ResolvedBy: r.AckBy.String,
	}
	if r.AckTS.Valid {
		t := r.AckTS.Time.UTC()
		a.ResolvedAt = &t
	}
	if r.MetricsJSON.Valid {
		// metrics are informational; a corrupt column leaves them empty
		_ = json.Unmarshal(r.MetricsJSON.JSON, &a.Metrics)
	}
	return a
}

func toArgs(a model.Alert) ([]any, error) {
	metrics, err := json.Marshal(a.Metrics)
	if err != nil {
		return nil, err
	}
	status := a.Status
	if status == "" {
		status = model.AlertStatusOpen
	}
	return []any{
		a.ID,
		a.CreatedAt,
		a.HospitalID,
		string(a.Type),
		string(a.Severity),
		a.Title,
		a.Message,
		null.JSONFrom(metrics),
		string(status),
	}, nil
}
