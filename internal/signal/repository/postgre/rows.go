package postgres

import (
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"

	"pulse-srv/internal/model"
)

type admissionRow struct {
	Day   time.Time `boil:"day"`
	Count float64   `boil:"count"`
}

type aqiRow struct {
	Day time.Time `boil:"day"`
	AQI float64   `boil:"aqi"`
}

type bedRow struct {
	Day          time.Time `boil:"day"`
	BedsOccupied int       `boil:"beds_occupied"`
	BedsTotal    int       `boil:"beds_total"`
}

type weatherRow struct {
	Day         time.Time `boil:"day"`
	WeatherJSON null.JSON `boil:"weather_json"`
}

type festivalRow struct {
	Name           string    `boil:"name"`
	Date           time.Time `boil:"date"`
	ExpectedImpact float64   `boil:"expected_impact"`
}

type inventoryRow struct {
	ItemID       string `boil:"item_id"`
	ItemName     string `boil:"item_name"`
	CurrentStock int    `boil:"current_stock"`
	MinThreshold int    `boil:"min_threshold"`
}

type snapshotRow struct {
	TS           time.Time `boil:"ts"`
	BedsTotal    int       `boil:"beds_total"`
	BedsOccupied int       `boil:"beds_occupied"`
	ICUTotal     int       `boil:"icu_total"`
	ICUOccupied  int       `boil:"icu_occupied"`
	StaffOnShift int       `boil:"staff_on_shift"`
	SuppliesJSON null.JSON `boil:"supplies_json"`
}

type contextRow struct {
	TS           time.Time   `boil:"ts"`
	AQI          float64     `boil:"aqi"`
	FestivalFlag int         `boil:"festival_flag"`
	EpidemicTag  null.String `boil:"epidemic_tag"`
	WeatherJSON  null.JSON   `boil:"weather_json"`
}

// weather is the shape of the weather_json column.
type weather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

func decodeJSON(j null.JSON, dest any) error {
	if !j.Valid || len(j.JSON) == 0 {
		return nil
	}
	return json.Unmarshal(j.JSON, dest)
}

func (r snapshotRow) toModel() (model.ResourceSnapshot, error) {
	s := model.ResourceSnapshot{
		Timestamp:    r.TS.UTC(),
		BedsTotal:    r.BedsTotal,
		BedsOccupied: r.BedsOccupied,
		ICUTotal:     r.ICUTotal,
		ICUOccupied:  r.ICUOccupied,
		StaffOnShift: r.StaffOnShift,
	}
	if err := decodeJSON(r.SuppliesJSON, &s.Supplies); err != nil {
		return model.ResourceSnapshot{}, err
	}
	return s, nil
}

func (r contextRow) toModel() (model.ContextSignal, error) {
	var w weather
	if err := decodeJSON(r.WeatherJSON, &w); err != nil {
		return model.ContextSignal{}, err
	}
	return model.ContextSignal{
		Timestamp:    r.TS.UTC(),
		AQI:          r.AQI,
		FestivalFlag: r.FestivalFlag != 0,
		EpidemicTag:  r.EpidemicTag.String,
		Temperature:  w.Temperature,
		Humidity:     w.Humidity,
	}, nil
}
