package http

import (
	"strings"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/errors"
	"pulse-srv/pkg/paginator"
	"pulse-srv/pkg/response"
)

type ListReq struct {
	HospitalID string `form:"hospital_id"`
	Status     string `form:"status"`
	Severity   string `form:"severity"`
	Page       int    `form:"page"`
	Limit      int64  `form:"limit"`
}

func (r ListReq) validate() error {
	collector := errors.NewValidationErrorCollector()
	switch model.AlertStatus(strings.ToLower(r.Status)) {
	case "", model.AlertStatusOpen, model.AlertStatusResolved:
	default:
		collector.Add(errors.NewValidationError(400, "status", "must be open or resolved"))
	}
	switch model.AlertSeverity(strings.ToLower(r.Severity)) {
	case "", model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityCritical:
	default:
		collector.Add(errors.NewValidationError(400, "severity", "must be low, medium, high or critical"))
	}
	if collector.HasError() {
		return collector
	}
	return nil
}

func (r ListReq) toInput() alert.ListInput {
	pq := paginator.PaginateQuery{Page: r.Page, Limit: r.Limit}
	pq.Adjust()
	return alert.ListInput{
		HospitalID:    r.HospitalID,
		Status:        model.AlertStatus(strings.ToLower(r.Status)),
		Severity:      model.AlertSeverity(strings.ToLower(r.Severity)),
		PaginateQuery: pq,
	}
}

type alertItem struct {
	ID         string             `json:"id"`
	HospitalID string             `json:"hospital_id"`
	Type       string             `json:"type"`
	Severity   string             `json:"severity"`
	Title      string             `json:"title"`
	Message    string             `json:"message"`
	Metrics    map[string]any     `json:"metrics,omitempty"`
	Status     string             `json:"status"`
	CreatedAt  response.DateTime  `json:"created_at"`
	ResolvedBy string             `json:"resolved_by,omitempty"`
	ResolvedAt *response.DateTime `json:"resolved_at,omitempty"`
}

type listResp struct {
	Items    []alertItem                  `json:"items"`
	Paginate paginator.PaginatorResponse `json:"paginate"`
}

func (h Handler) newAlertItem(a model.Alert) alertItem {
	item := alertItem{
		ID:         a.ID,
		HospitalID: a.HospitalID,
		Type:       string(a.Type),
		Severity:   string(a.Severity),
		Title:      a.Title,
		Message:    a.Message,
		Metrics:    a.Metrics,
		Status:     string(a.Status),
		CreatedAt:  response.DateTime(a.CreatedAt),
		ResolvedBy: a.ResolvedBy,
	}
	if a.ResolvedAt != nil {
		t := response.DateTime(*a.ResolvedAt)
		item.ResolvedAt = &t
	}
	return item
}

func (h Handler) newListResp(o alert.ListOutput) listResp {
	items := make([]alertItem, 0, len(o.Alerts))
	for _, a := range o.Alerts {
		items = append(items, h.newAlertItem(a))
	}
	return listResp{Items: items, Paginate: o.Pagination.ToResponse()}
}
