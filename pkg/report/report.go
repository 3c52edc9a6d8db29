// Package report renders forecast decisions as Excel workbooks.
package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"pulse-srv/internal/model"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetForecast = "Forecast"
	SheetDecision = "Decision"
	SheetActions  = "Actions"

	dateLayout = "2006-01-02"
)

var forecastHeader = []string{"Date", "Baseline", "Adjusted", "Confidence Low", "Confidence High"}

// Input is the content of one report.
type Input struct {
	Facility    model.Facility
	Decision    model.Decision
	GeneratedAt time.Time
}

// Build renders the workbook and returns its bytes.
func Build(in Input) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetForecast); err != nil {
		return nil, fmt.Errorf("report: rename sheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("report: header style: %w", err)
	}

	if err := writeForecast(f, headerStyle, in.Decision.Forecast); err != nil {
		return nil, err
	}
	if err := writeDecision(f, headerStyle, in); err != nil {
		return nil, err
	}
	if err := writeActions(f, headerStyle, in.Decision.Actions); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("report: write: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName is the download name of a report.
func FileName(facility model.Facility, at time.Time) string {
	return fmt.Sprintf("forecast_%s_%s_%s.xlsx", facility.HospitalID, facility.DepartmentID, at.UTC().Format("20060102_150405"))
}

func writeForecast(f *excelize.File, style int, fc model.Forecast) error {
	if err := writeHeader(f, SheetForecast, style, forecastHeader); err != nil {
		return err
	}
	for i, p := range fc.Points {
		row := []any{p.Date.UTC().Format(dateLayout), round(p.BaselineValue), round(p.AdjustedValue), round(p.ConfidenceLow), round(p.ConfidenceHigh)}
		if err := writeRow(f, SheetForecast, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetForecast, "A", "E", 18)
}

func writeDecision(f *excelize.File, style int, in Input) error {
	if _, err := f.NewSheet(SheetDecision); err != nil {
		return fmt.Errorf("report: new sheet: %w", err)
	}
	if err := writeHeader(f, SheetDecision, style, []string{"Field", "Value"}); err != nil {
		return err
	}

	d := in.Decision
	s := d.Forecast.Summary
	rows := [][]any{
		{"Hospital", in.Facility.HospitalID},
		{"Department", in.Facility.DepartmentID},
		{"Generated At", in.GeneratedAt.UTC().Format(time.RFC3339)},
		{"Model Source", string(s.ModelSource)},
		{"Scenario", string(s.Scenario)},
		{"Average Baseline", round(s.AverageBaseline)},
		{"Average Adjusted", round(s.AverageAdjusted)},
		{"Peak Value", round(s.PeakValue)},
		{"Peak Date", s.PeakDate.UTC().Format(dateLayout)},
		{"AQI Used", round(s.AQIUsed)},
		{"Multiplier", round(s.Multiplier)},
		{"Risk Score", d.Risk.Score},
		{"Risk Level", string(d.Risk.Level)},
		{"Surge %", round(d.Risk.SurgePct)},
		{"Projected Occupancy %", round(d.Risk.ProjectedOccupancy)},
		{"Beds Gap", round(d.Shortage.BedsGap)},
		{"Staff Gap", round(d.Shortage.StaffGap)},
		{"Shortage Severity", string(d.Shortage.Severity)},
		{"Explanation", s.Explanation},
	}
	if s.FallbackReason != "" {
		rows = append(rows, []any{"Fallback Reason", s.FallbackReason})
	}
	if d.Narrative != "" {
		rows = append(rows, []any{"Narrative", d.Narrative})
	}
	for i, r := range rows {
		if err := writeRow(f, SheetDecision, i+2, r); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetDecision, "A", "A", 24); err != nil {
		return err
	}
	return f.SetColWidth(SheetDecision, "B", "B", 60)
}

func writeActions(f *excelize.File, style int, plan model.ActionPlan) error {
	if _, err := f.NewSheet(SheetActions); err != nil {
		return fmt.Errorf("report: new sheet: %w", err)
	}
	if err := writeHeader(f, SheetActions, style, []string{"Category", "Priority", "Description"}); err != nil {
		return err
	}
	for i, a := range plan.All() {
		if err := writeRow(f, SheetActions, i+2, []any{string(a.Category), string(a.Priority), a.Description}); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetActions, "C", "C", 70)
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("report: header range: %w", err)
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("report: row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("report: %s row %d: %w", sheet, row, err)
	}
	return nil
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
