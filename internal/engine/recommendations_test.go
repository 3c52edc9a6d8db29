package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/model"
)

func categories(recs []model.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Category)
	}
	return out
}

func TestRecommend(t *testing.T) {
	diwali := model.Festival{Name: "Diwali", Date: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), ExpectedImpact: 30}

	tests := []struct {
		name string
		in   RecommendationInput
		want []string
	}{
		{name: "quiet", in: RecommendationInput{SurgePct: 5}, want: []string{}},
		{name: "mild surge", in: RecommendationInput{SurgePct: 18}, want: []string{"resources"}},
		{name: "large surge", in: RecommendationInput{SurgePct: 40}, want: []string{"staffing", "resources", "capacity_management"}},
		{
			name: "context only",
			in: RecommendationInput{
				Pollution: model.PollutionAnalysis{RiskScore: 75},
				Epidemic:  model.EpidemicAnalysis{Active: true, Severity: model.SeverityHigh, Diseases: []string{"dengue", "malaria"}},
				Festival:  model.FestivalAnalysis{Upcoming: []model.Festival{{Name: "Small", ExpectedImpact: 10}, diwali, diwali}},
			},
			want: []string{"event_preparation", "environmental_health", "infection_control", "infection_control"},
		},
		{
			name: "medium epidemic ignored",
			in:   RecommendationInput{Epidemic: model.EpidemicAnalysis{Active: true, Severity: model.SeverityMedium, Diseases: []string{"influenza"}}},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, categories(got))
		})
	}
}

func TestRecommend_StaffIncreaseCapped(t *testing.T) {
	tests := []struct {
		surge    float64
		increase int
		priority string
	}{
		{surge: 25, increase: 20, priority: "medium"},
		{surge: 50, increase: 40, priority: "high"},
		{surge: 90, increase: 50, priority: "high"},
	}
	for _, tt := range tests {
		recs := Recommend(RecommendationInput{SurgePct: tt.surge})
		require.NotEmpty(t, recs)
		assert.Equal(t, "staffing", recs[0].Category)
		assert.Equal(t, tt.increase, recs[0].Metrics["staff_increase_percentage"])
		assert.Equal(t, tt.priority, recs[0].Priority)
	}
}
