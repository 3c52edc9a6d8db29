package repository

import (
	"time"

	"pulse-srv/internal/model"
	"pulse-srv/pkg/paginator"
)

// Filter narrows alert listings. Empty fields match everything.
type Filter struct {
	HospitalID string
	Status     model.AlertStatus
	Severity   model.AlertSeverity
}

// GetOptions contains options for paginated alert listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type ResolveOptions struct {
	ID         string
	ResolvedBy string
	ResolvedAt time.Time
}
