package model

import (
	"fmt"
	"time"
)

// Facility identifies a (hospital, department) pair the pipeline runs for.
type Facility struct {
	HospitalID   string `json:"hospital_id"`
	DepartmentID string `json:"department_id"`
}

func (f Facility) String() string {
	return fmt.Sprintf("%s:%s", f.HospitalID, f.DepartmentID)
}

// HistoryPoint is one observed daily admission count.
type HistoryPoint struct {
	Date  time.Time `json:"date"`
	Count float64   `json:"count"`
}

// AQIReading is an air-quality observation for a day.
type AQIReading struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// BedReading is an occupancy observation for a day.
type BedReading struct {
	Date     time.Time `json:"date"`
	Occupied float64   `json:"occupied"`
	Total    float64   `json:"total"`
}

// WeatherReading is a weather observation for a day.
type WeatherReading struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
}

// EventDay marks holidays and named events.
type EventDay struct {
	Date      time.Time `json:"date"`
	IsHoliday bool      `json:"is_holiday"`
	Name      string    `json:"name"`
}

// ResourceSnapshot is the latest capacity reading for a facility.
type ResourceSnapshot struct {
	Timestamp    time.Time      `json:"timestamp"`
	BedsTotal    int            `json:"beds_total"`
	BedsOccupied int            `json:"beds_occupied"`
	ICUTotal     int            `json:"icu_total"`
	ICUOccupied  int            `json:"icu_occupied"`
	StaffOnShift int            `json:"staff_on_shift"`
	Supplies     map[string]int `json:"supplies"`
}

// OccupancyPct returns occupied beds as a percentage of total beds.
func (s ResourceSnapshot) OccupancyPct() float64 {
	if s.BedsTotal <= 0 {
		return 0
	}
	return float64(s.BedsOccupied) / float64(s.BedsTotal) * 100
}

// AvailableBeds never goes below zero.
func (s ResourceSnapshot) AvailableBeds() int {
	if s.BedsOccupied >= s.BedsTotal {
		return 0
	}
	return s.BedsTotal - s.BedsOccupied
}

// Festival is an upcoming festival with its expected load impact in percent.
type Festival struct {
	Name           string    `json:"name"`
	Date           time.Time `json:"date"`
	ExpectedImpact float64   `json:"expected_impact"`
}

// ContextSignal is the latest external context for a hospital.
type ContextSignal struct {
	Timestamp    time.Time  `json:"timestamp"`
	AQI          float64    `json:"aqi"`
	FestivalFlag bool       `json:"festival_flag"`
	EpidemicTag  string     `json:"epidemic_tag"`
	Temperature  float64    `json:"temperature"`
	Humidity     float64    `json:"humidity"`
	Festivals    []Festival `json:"festivals"`
}

// InventoryItem is a tracked supply line.
type InventoryItem struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	CurrentStock int    `json:"current_stock"`
	MinThreshold int    `json:"min_threshold"`
}

// IsLow reports whether stock is below the minimum threshold.
func (i InventoryItem) IsLow() bool {
	return i.CurrentStock < i.MinThreshold
}

// Deficit is the quantity needed to reach the threshold.
func (i InventoryItem) Deficit() int {
	if !i.IsLow() {
		return 0
	}
	return i.MinThreshold - i.CurrentStock
}
