package repository

import (
	"time"

	"pulse-srv/internal/model"
)

// RangeOptions selects rows of one facility in [From, To).
// DepartmentID is ignored by hospital-wide sources.
type RangeOptions struct {
	Facility model.Facility
	From     time.Time
	To       time.Time
}

type SaveForecastOptions struct {
	Facility     model.Facility
	Points       []model.ForecastPoint
	ModelVersion string
}

type SaveShortageOptions struct {
	Facility    model.Facility
	HorizonDate time.Time
	Shortage    model.ShortageEstimate
}
