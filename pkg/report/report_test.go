package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pulse-srv/internal/model"
)

func TestBuild(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	plan := model.NewActionPlan()
	plan.Add(model.ActionItem{Category: model.CategoryStaffing, Priority: model.PriorityHigh, Description: "Call in reserve nurses"})

	in := Input{
		Facility: model.Facility{HospitalID: "H1", DepartmentID: "ED"},
		Decision: model.Decision{
			Forecast: model.Forecast{
				Points: []model.ForecastPoint{
					{Date: day, BaselineValue: 40, AdjustedValue: 46.004, ConfidenceLow: 30, ConfidenceHigh: 60},
					{Date: day.AddDate(0, 0, 1), BaselineValue: 41, AdjustedValue: 47.2, ConfidenceLow: 31, ConfidenceHigh: 61},
				},
				Summary: model.ForecastSummary{ModelSource: model.ModelSourceTrend, Scenario: model.ScenarioBaseline},
			},
			Risk:    model.RiskAssessment{Score: 72, Level: model.RiskHigh},
			Actions: plan,
		},
		GeneratedAt: day,
	}

	b, err := Build(in)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetForecast, SheetDecision, SheetActions}, f.GetSheetList())

	rows, err := f.GetRows(SheetForecast)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, forecastHeader, rows[0])
	assert.Equal(t, "2026-03-01", rows[1][0])
	assert.Equal(t, "46", rows[1][2])

	level, err := f.GetCellValue(SheetDecision, "B14")
	require.NoError(t, err)
	assert.Equal(t, "High", level)

	action, err := f.GetCellValue(SheetActions, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Call in reserve nurses", action)
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "forecast_H1_ED_20260301_093000.xlsx", FileName(model.Facility{HospitalID: "H1", DepartmentID: "ED"}, at))
}
