package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pulse-srv/internal/model"
)

func TestSeason(t *testing.T) {
	tests := map[time.Month]string{
		time.January:   SeasonWinter,
		time.April:     SeasonSummer,
		time.June:      SeasonPreMonsoon,
		time.August:    SeasonMonsoon,
		time.November:  SeasonPreMonsoon,
		time.December:  SeasonWinter,
		time.September: SeasonMonsoon,
	}
	for m, want := range tests {
		assert.Equal(t, want, Season(time.Date(2025, m, 10, 0, 0, 0, 0, time.UTC)), m.String())
	}
}

func TestAnalyzePollution(t *testing.T) {
	nov := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		aqi      float64
		category string
		mult     float64
		score    float64
	}{
		{aqi: 90, category: "Moderate", mult: 1.0, score: 22.5},
		{aqi: 180, category: "Poor", mult: 1.2, score: 45},
		{aqi: 300, category: "Very Poor", mult: 1.4, score: 75},
		{aqi: 600, category: "Very Poor", mult: 1.4, score: 100},
	}
	for _, tt := range tests {
		got := AnalyzePollution(tt.aqi, nov)
		assert.Equal(t, tt.category, got.Category)
		assert.InDelta(t, tt.mult, got.Multiplier, 1e-9)
		assert.InDelta(t, tt.score, got.RiskScore, 1e-9)
		assert.True(t, got.IsPollutionSeason)
	}
	assert.False(t, AnalyzePollution(90, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)).IsPollutionSeason)
}

func TestAnalyzeEpidemic(t *testing.T) {
	august := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		tag      string
		now      time.Time
		active   bool
		diseases []string
		severity model.AlertSeverity
		source   string
	}{
		{name: "explicit with severity", tag: "Dengue,Malaria:high", now: may, active: true, diseases: []string{"dengue", "malaria"}, severity: model.SeverityHigh, source: "signal"},
		{name: "explicit without severity", tag: "cholera", now: may, active: true, diseases: []string{"cholera"}, severity: model.SeverityMedium, source: "signal"},
		{name: "monsoon fallback", tag: "", now: august, active: true, diseases: []string{"dengue", "malaria"}, severity: model.SeverityMedium, source: "seasonal"},
		{name: "none tag in summer", tag: "none", now: may, active: false, severity: model.SeverityLow, source: "seasonal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeEpidemic(tt.tag, tt.now)
			assert.Equal(t, tt.active, got.Active)
			assert.Equal(t, tt.diseases, got.Diseases)
			assert.Equal(t, tt.severity, got.Severity)
			assert.Equal(t, tt.source, got.Source)
		})
	}
}

func TestAnalyzeFestival(t *testing.T) {
	sig := model.ContextSignal{
		FestivalFlag: true,
		Festivals: []model.Festival{
			{Name: "Late", Date: testDay.AddDate(0, 0, 40), ExpectedImpact: 30},
			{Name: "Soon", Date: testDay.AddDate(0, 0, 10), ExpectedImpact: 20},
			{Name: "Past", Date: testDay.AddDate(0, 0, -1), ExpectedImpact: 50},
			{Name: "Today", Date: testDay, ExpectedImpact: 18},
		},
	}

	got := AnalyzeFestival(sig, testDay.Add(15*time.Hour))

	assert.True(t, got.Active)
	assert.InDelta(t, 1.2, got.Multiplier, 1e-9)
	if assert.Len(t, got.Upcoming, 2) {
		assert.Equal(t, "Today", got.Upcoming[0].Name)
		assert.Equal(t, "Soon", got.Upcoming[1].Name)
	}
}
