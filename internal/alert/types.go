package alert

import (
	"pulse-srv/internal/model"
	"pulse-srv/pkg/paginator"
)

// RaiseInput carries the alerts of one pipeline run.
type RaiseInput struct {
	Facility model.Facility
	Risk     model.RiskAssessment
	Alerts   []model.Alert
}

type ListInput struct {
	HospitalID    string
	Status        model.AlertStatus
	Severity      model.AlertSeverity
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Alerts     []model.Alert
	Pagination paginator.Paginator
}
