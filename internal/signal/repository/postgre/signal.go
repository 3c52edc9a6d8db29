package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"

	"pulse-srv/internal/model"
	"pulse-srv/internal/signal/repository"
)

func (r *implRepository) ListAdmissions(ctx context.Context, opts repository.RangeOptions) ([]model.HistoryPoint, error) {
	var rows []admissionRow
	err := queries.Raw(listAdmissionsQuery, opts.Facility.HospitalID, opts.Facility.DepartmentID, opts.From, opts.To).
		Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.ListAdmissions.Bind: %v", err)
		return nil, errors.Wrap(err, "list admissions")
	}

	res := make([]model.HistoryPoint, len(rows))
	for i, row := range rows {
		res[i] = model.HistoryPoint{Date: row.Day.UTC(), Count: row.Count}
	}
	return res, nil
}

func (r *implRepository) ListAQI(ctx context.Context, opts repository.RangeOptions) ([]model.AQIReading, error) {
	var rows []aqiRow
	if err := queries.Raw(listAQIQuery, opts.Facility.HospitalID, opts.From, opts.To).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.ListAQI.Bind: %v", err)
		return nil, errors.Wrap(err, "list aqi")
	}

	res := make([]model.AQIReading, len(rows))
	for i, row := range rows {
		res[i] = model.AQIReading{Date: row.Day.UTC(), Value: row.AQI}
	}
	return res, nil
}

func (r *implRepository) ListBeds(ctx context.Context, opts repository.RangeOptions) ([]model.BedReading, error) {
	var rows []bedRow
	if err := queries.Raw(listBedsQuery, opts.Facility.HospitalID, opts.From, opts.To).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.ListBeds.Bind: %v", err)
		return nil, errors.Wrap(err, "list beds")
	}

	res := make([]model.BedReading, len(rows))
	for i, row := range rows {
		res[i] = model.BedReading{Date: row.Day.UTC(), Occupied: float64(row.BedsOccupied), Total: float64(row.BedsTotal)}
	}
	return res, nil
}

func (r *implRepository) ListWeather(ctx context.Context, opts repository.RangeOptions) ([]model.WeatherReading, error) {
	var rows []weatherRow
	if err := queries.Raw(listWeatherQuery, opts.Facility.HospitalID, opts.From, opts.To).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.ListWeather.Bind: %v", err)
		return nil, errors.Wrap(err, "list weather")
	}

	res := make([]model.WeatherReading, 0, len(rows))
	for _, row := range rows {
		if !row.WeatherJSON.Valid {
			continue
		}
		var w weather
		if err := decodeJSON(row.WeatherJSON, &w); err != nil {
			r.l.Warnf(ctx, "internal.signal.repository.postgres.ListWeather.decodeJSON: %v", err)
			continue
		}
		res = append(res, model.WeatherReading{Date: row.Day.UTC(), Temperature: w.Temperature, Humidity: w.Humidity})
	}
	return res, nil
}

func (r *implRepository) ListFestivals(ctx context.Context, opts repository.RangeOptions) ([]model.Festival, error) {
	var rows []festivalRow
	if err := queries.Raw(listFestivalsQuery, opts.Facility.HospitalID, opts.From, opts.To).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.ListFestivals.Bind: %v", err)
		return nil, errors.Wrap(err, "list festivals")
	}

	res := make([]model.Festival, len(rows))
	for i, row := range rows {
		res[i] = model.Festival{Name: row.Name, Date: row.Date.UTC(), ExpectedImpact: row.ExpectedImpact}
	}
	return res, nil
}

// ListEvents exposes calendar festivals in the range as event days.
func (r *implRepository) ListEvents(ctx context.Context, opts repository.RangeOptions) ([]model.EventDay, error) {
	festivals, err := r.ListFestivals(ctx, opts)
	if err != nil {
		return nil, err
	}

	res := make([]model.EventDay, len(festivals))
	for i, f := range festivals {
		res[i] = model.EventDay{Date: f.Date, IsHoliday: true, Name: f.Name}
	}
	return res, nil
}

func (r *implRepository) ListInventory(ctx context.Context, hospitalID string) ([]model.InventoryItem, error) {
	var rows []inventoryRow
	if err := queries.Raw(listInventoryQuery, hospitalID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.ListInventory.Bind: %v", err)
		return nil, errors.Wrap(err, "list inventory")
	}

	res := make([]model.InventoryItem, len(rows))
	for i, row := range rows {
		res[i] = model.InventoryItem{
			ItemID:       row.ItemID,
			ItemName:     row.ItemName,
			CurrentStock: row.CurrentStock,
			MinThreshold: row.MinThreshold,
		}
	}
	return res, nil
}

func (r *implRepository) LatestSnapshot(ctx context.Context, hospitalID string) (model.ResourceSnapshot, error) {
	var row snapshotRow
	if err := queries.Raw(latestSnapshotQuery, hospitalID).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ResourceSnapshot{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.signal.repository.postgres.LatestSnapshot.Bind: %v", err)
		return model.ResourceSnapshot{}, errors.Wrap(err, "latest snapshot")
	}

	s, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.LatestSnapshot.toModel: %v", err)
		return model.ResourceSnapshot{}, errors.Wrap(err, "decode supplies")
	}
	return s, nil
}

func (r *implRepository) LatestContext(ctx context.Context, hospitalID string) (model.ContextSignal, error) {
	var row contextRow
	if err := queries.Raw(latestContextQuery, hospitalID).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContextSignal{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.signal.repository.postgres.LatestContext.Bind: %v", err)
		return model.ContextSignal{}, errors.Wrap(err, "latest context")
	}

	sig, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "internal.signal.repository.postgres.LatestContext.toModel: %v", err)
		return model.ContextSignal{}, errors.Wrap(err, "decode weather")
	}
	return sig, nil
}
