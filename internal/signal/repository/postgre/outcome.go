package postgres

import (
	"context"
	"encoding/json"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"

	"pulse-srv/internal/signal/repository"
)

const defaultModelVersion = "trend-v1"

// SaveForecast writes every horizon point in one multi-row insert.
func (r *implRepository) SaveForecast(ctx context.Context, opts repository.SaveForecastOptions) error {
	if len(opts.Points) == 0 {
		return repository.ErrNoPoints
	}
	version := opts.ModelVersion
	if version == "" {
		version = defaultModelVersion
	}

	args := make([]any, 0, len(opts.Points)*forecastColumns)
	for _, p := range opts.Points {
		args = append(args,
			opts.Facility.HospitalID,
			opts.Facility.DepartmentID,
			p.Date,
			p.AdjustedValue,
			p.ConfidenceLow,
			p.ConfidenceHigh,
			version,
		)
	}
	query := insertForecastPrefix + strmangle.Placeholders(true, len(args), 1, forecastColumns)

	if _, err := queries.Raw(query, args...).ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.SaveForecast.ExecContext: %v", err)
		return errors.Wrap(err, "save forecast")
	}
	return nil
}

func (r *implRepository) SaveShortage(ctx context.Context, opts repository.SaveShortageOptions) error {
	gaps, err := json.Marshal(opts.Shortage.SupplyGaps)
	if err != nil {
		return errors.Wrap(err, "marshal supply gaps")
	}

	_, err = queries.Raw(insertShortageQuery,
		opts.Facility.HospitalID,
		opts.Facility.DepartmentID,
		opts.HorizonDate,
		opts.Shortage.BedsGap,
		opts.Shortage.StaffGap,
		null.JSONFrom(gaps),
		string(opts.Shortage.Severity),
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.SaveShortage.ExecContext: %v", err)
		return errors.Wrap(err, "save shortage")
	}
	return nil
}
