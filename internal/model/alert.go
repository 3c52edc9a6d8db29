package model

import "time"

// AlertSeverity uses lowercase labels on the wire.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Order returns the presentation order, critical first.
func (s AlertSeverity) Order() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// AlertType classifies the source of an alert.
type AlertType string

const (
	AlertTypePatientSurge    AlertType = "patient_surge"
	AlertTypeFestivalImpact  AlertType = "festival_impact"
	AlertTypePollutionRisk   AlertType = "pollution_risk"
	AlertTypeEpidemic        AlertType = "epidemic_outbreak"
	AlertTypeOperationalRisk AlertType = "operational_risk"
)

// AlertStatus tracks the persisted lifecycle.
type AlertStatus string

const (
	AlertStatusOpen     AlertStatus = "open"
	AlertStatusResolved AlertStatus = "resolved"
)

// Alert is a generated alert record.
type Alert struct {
	ID         string         `json:"id"`
	HospitalID string         `json:"hospital_id,omitempty"`
	Type       AlertType      `json:"type"`
	Severity   AlertSeverity  `json:"severity"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Metrics    map[string]any `json:"metrics,omitempty"`
	Status     AlertStatus    `json:"status,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	ResolvedBy string         `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
}
