package engine

import (
	"fmt"
	"math"

	"pulse-srv/internal/model"
)

// RecommendationInput feeds the recommendation rules.
type RecommendationInput struct {
	SurgePct  float64
	Pollution model.PollutionAnalysis
	Epidemic  model.EpidemicAnalysis
	Festival  model.FestivalAnalysis
}

// Recommend builds the multi-step operational recommendations.
func Recommend(in RecommendationInput) []model.Recommendation {
	recs := []model.Recommendation{}
	surge := in.SurgePct

	if surge > 20 {
		increase := int(math.Min(float64(int(surge*0.8)), 50))
		recs = append(recs, model.Recommendation{
			Category:    "staffing",
			Priority:    pick(surge > 35, "high", "medium"),
			Title:       "Increase Staff Allocation",
			Description: fmt.Sprintf("Increase staff by approximately %d%% to handle predicted surge", increase),
			Actions: []string{
				fmt.Sprintf("Schedule additional %d%% nursing staff for the forecast horizon", increase),
				"Arrange on-call doctors for emergency coverage",
				"Brief staff on expected surge and protocols",
			},
			Timeline: "immediate",
			Metrics:  map[string]any{"staff_increase_percentage": increase, "predicted_surge": surge},
		})
	}

	if surge > 15 {
		recs = append(recs, model.Recommendation{
			Category:    "resources",
			Priority:    pick(surge > 30, "high", "medium"),
			Title:       "Stock Essential Medical Supplies",
			Description: "Increase inventory of essential medical supplies and equipment",
			Actions: []string{
				"Order additional PPE, masks, and sanitizers",
				"Stock up on common medications and IV fluids",
				"Ensure backup oxygen supply is available",
			},
			Timeline: "within 48 hours",
			Metrics:  map[string]any{"predicted_surge": surge},
		})
	}

	for _, f := range in.Festival.Upcoming {
		if f.ExpectedImpact <= festivalImpactThreshold {
			continue
		}
		recs = append(recs, model.Recommendation{
			Category:    "event_preparation",
			Priority:    "medium",
			Title:       fmt.Sprintf("Prepare for %s", f.Name),
			Description: fmt.Sprintf("Special preparations for %s on %s", f.Name, f.Date.Format("2006-01-02")),
			Actions: []string{
				"Set up temporary triage areas if needed",
				"Coordinate with local authorities for emergency response",
				"Ensure ambulance services are on standby",
			},
			Timeline: "before event",
			Metrics:  map[string]any{"festival_name": f.Name, "expected_impact": f.ExpectedImpact},
		})
		break
	}

	if score := in.Pollution.RiskScore; score > pollutionAlertScore {
		recs = append(recs, model.Recommendation{
			Category:    "environmental_health",
			Priority:    pick(score > pollutionCriticalScore, "high", "medium"),
			Title:       "Prepare for Pollution-Related Cases",
			Description: "Increase readiness for respiratory and cardiovascular cases",
			Actions: []string{
				"Stock inhalers, nebulizers, and respiratory medications",
				"Set up dedicated respiratory care unit",
				"Coordinate with pulmonology specialists",
			},
			Timeline: "immediate",
			Metrics:  map[string]any{"pollution_risk_score": score},
		})
	}

	if in.Epidemic.Active && (in.Epidemic.Severity == model.SeverityHigh || in.Epidemic.Severity == model.SeverityCritical) {
		for _, d := range in.Epidemic.Diseases {
			recs = append(recs, model.Recommendation{
				Category:    "infection_control",
				Priority:    pick(in.Epidemic.Severity == model.SeverityCritical, "critical", "high"),
				Title:       fmt.Sprintf("Epidemic Response: %s", d),
				Description: fmt.Sprintf("Implement infection control measures for %s outbreak", d),
				Actions: []string{
					"Activate isolation protocols and quarantine areas",
					"Ensure adequate PPE for all staff",
					"Coordinate with public health authorities",
				},
				Timeline: "immediate",
				Metrics:  map[string]any{"disease": d, "severity": in.Epidemic.Severity},
			})
		}
	}

	if surge > 25 {
		recs = append(recs, model.Recommendation{
			Category:    "capacity_management",
			Priority:    "high",
			Title:       "Optimize Bed Capacity",
			Description: "Maximize available bed capacity and patient flow",
			Actions: []string{
				"Expedite discharge of stable patients",
				"Convert semi-private rooms if needed",
			},
			Timeline: "within 24 hours",
			Metrics:  map[string]any{"predicted_surge": surge},
		})
	}

	return recs
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
