package engine

import (
	"sort"
	"time"

	"pulse-srv/internal/model"
)

const noEvent = "None"

// Signals is the raw, per-source input to the aggregator. Series may differ
// in length and contain gaps.
type Signals struct {
	Admissions []model.HistoryPoint
	AQI        []model.AQIReading
	Beds       []model.BedReading
	Weather    []model.WeatherReading
	Events     []model.EventDay
}

// Aggregate merges every series into one row per calendar day over the union
// of all dates. Continuous fields are forward-filled, categorical fields get
// defaults.
func Aggregate(s Signals) (model.FeatureFrame, error) {
	if len(s.Admissions) == 0 {
		return model.FeatureFrame{}, &InsufficientDataError{Source: "admissions"}
	}

	rows := map[time.Time]*model.FeatureRow{}
	row := func(t time.Time) *model.FeatureRow {
		d := day(t)
		r, ok := rows[d]
		if !ok {
			r = &model.FeatureRow{Date: d, EventName: noEvent}
			rows[d] = r
		}
		return r
	}

	aqiSeen := map[time.Time]bool{}
	bedSeen := map[time.Time]bool{}
	weatherSeen := map[time.Time]bool{}

	for _, p := range s.Admissions {
		r := row(p.Date)
		r.Admissions += p.Count
		r.HasAdmissions = true
	}
	for _, p := range s.AQI {
		r := row(p.Date)
		r.AQI = p.Value
		aqiSeen[r.Date] = true
	}
	for _, p := range s.Beds {
		r := row(p.Date)
		r.OccupiedBeds = p.Occupied
		r.TotalBeds = p.Total
		bedSeen[r.Date] = true
	}
	for _, p := range s.Weather {
		r := row(p.Date)
		r.Temperature = p.Temperature
		r.Humidity = p.Humidity
		weatherSeen[r.Date] = true
	}
	for _, e := range s.Events {
		r := row(e.Date)
		r.IsHoliday = r.IsHoliday || e.IsHoliday
		if e.Name != "" {
			r.EventName = e.Name
		}
	}

	frame := model.FeatureFrame{Rows: make([]model.FeatureRow, 0, len(rows))}
	for _, r := range rows {
		frame.Rows = append(frame.Rows, *r)
	}
	sort.Slice(frame.Rows, func(i, j int) bool {
		return frame.Rows[i].Date.Before(frame.Rows[j].Date)
	})

	forwardFill(frame.Rows, aqiSeen, func(dst, src *model.FeatureRow) {
		dst.AQI = src.AQI
	})
	forwardFill(frame.Rows, bedSeen, func(dst, src *model.FeatureRow) {
		dst.OccupiedBeds = src.OccupiedBeds
		dst.TotalBeds = src.TotalBeds
	})
	forwardFill(frame.Rows, weatherSeen, func(dst, src *model.FeatureRow) {
		dst.Temperature = src.Temperature
		dst.Humidity = src.Humidity
	})

	return frame, nil
}

// forwardFill copies the last observed value into later rows that have none.
// Rows before the first observation are left at zero.
func forwardFill(rows []model.FeatureRow, seen map[time.Time]bool, copyFn func(dst, src *model.FeatureRow)) {
	last := -1
	for i := range rows {
		if seen[rows[i].Date] {
			last = i
			continue
		}
		if last >= 0 {
			copyFn(&rows[i], &rows[last])
		}
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
