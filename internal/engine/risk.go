package engine

import (
	"fmt"
	"math"
	"sort"

	"pulse-srv/internal/model"
)

const (
	weightOccupancy = 0.4
	weightAQI       = 0.3
	weightSurge     = 0.2
	weightInventory = 0.1

	inventoryPointsPerItem = 15.0

	FactorOccupancy = "occupancy"
	FactorAQI       = "aqi"
	FactorSurge     = "surge"
	FactorInventory = "inventory"
)

// step is one bucket of a step function: values below Below score Points.
type step struct {
	Below  float64
	Points float64
	Level  model.RiskLevel
}

var (
	occupancySteps = []step{
		{70, 10, model.RiskLow},
		{85, 40, model.RiskModerate},
		{95, 70, model.RiskHigh},
		{math.Inf(1), 95, model.RiskCritical},
	}
	aqiSteps = []step{
		{100, 10, model.RiskLow},
		{200, 30, model.RiskModerate},
		{300, 60, model.RiskHigh},
		{math.Inf(1), 90, model.RiskCritical},
	}
	surgeSteps = []step{
		{5, 5, model.RiskLow},
		{15, 25, model.RiskModerate},
		{30, 55, model.RiskHigh},
		{math.Inf(1), 85, model.RiskCritical},
	}
)

func bucket(steps []step, v float64) step {
	for _, s := range steps {
		if v < s.Below {
			return s
		}
	}
	return steps[len(steps)-1]
}

// RiskInput is everything the scorer needs.
type RiskInput struct {
	OccupancyPct float64
	AQI          float64
	Summary      model.ForecastSummary
	Inventory    []model.InventoryItem
	TotalBeds    int
}

// RiskScorer converts current and forecast signals into a composite score.
type RiskScorer struct {
	cfg Config
}

func NewRiskScorer(cfg Config) RiskScorer {
	return RiskScorer{cfg: cfg.withDefaults()}
}

// Score computes the weighted score and the risk level. The level is the
// worst category reached by the occupancy, AQI or surge factor, so a single
// catastrophic signal is never averaged away.
func (r RiskScorer) Score(in RiskInput) (model.RiskAssessment, error) {
	if in.OccupancyPct < 0 {
		return model.RiskAssessment{}, invalid("occupancy_pct", "must not be negative")
	}
	if in.AQI < 0 {
		return model.RiskAssessment{}, invalid("aqi", "must not be negative")
	}
	lowItems := 0
	for _, it := range in.Inventory {
		if it.CurrentStock < 0 || it.MinThreshold < 0 {
			return model.RiskAssessment{}, invalid("inventory", fmt.Sprintf("negative stock for %s", it.ItemName))
		}
		if it.IsLow() {
			lowItems++
		}
	}

	surgePct := in.Summary.SurgePct()
	occ := bucket(occupancySteps, in.OccupancyPct)
	aqi := bucket(aqiSteps, in.AQI)
	surge := bucket(surgeSteps, surgePct)
	inv := inventoryPointsPerItem * float64(lowItems)

	factors := []model.RiskFactor{
		{Name: FactorOccupancy, SubScore: occ.Points, WeightedPoints: occ.Points * weightOccupancy, Level: occ.Level},
		{Name: FactorAQI, SubScore: aqi.Points, WeightedPoints: aqi.Points * weightAQI, Level: aqi.Level},
		{Name: FactorSurge, SubScore: surge.Points, WeightedPoints: surge.Points * weightSurge, Level: surge.Level},
		{Name: FactorInventory, SubScore: inv, WeightedPoints: inv * weightInventory, Level: inventoryLevel(lowItems)},
	}

	var sum float64
	level := model.RiskLow
	for _, f := range factors {
		sum += f.WeightedPoints
		if f.Name != FactorInventory && f.Level.Rank() > level.Rank() {
			level = f.Level
		}
	}
	score := int(clamp(math.Round(sum), 0, 100))

	var breakdown []string
	if aqi.Points > 30 {
		breakdown = append(breakdown, fmt.Sprintf("High AQI contribution (%d pts)", int(aqi.Points)))
	}
	if occ.Points > 40 {
		breakdown = append(breakdown, fmt.Sprintf("High Occupancy load (%d pts)", int(occ.Points)))
	}
	if surge.Points > 25 {
		breakdown = append(breakdown, fmt.Sprintf("Projected Surge (%d pts)", int(surge.Points)))
	}
	if inv > 0 {
		breakdown = append(breakdown, fmt.Sprintf("Inventory Shortages (%d pts)", int(inv)))
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].WeightedPoints > factors[j].WeightedPoints
	})

	return model.RiskAssessment{
		Score:               score,
		Level:               level,
		ContributingFactors: factors,
		Breakdown:           breakdown,
		SurgePct:            surgePct,
		ProjectedOccupancy:  r.projectedOccupancy(in),
	}, nil
}

// projectedOccupancy estimates occupancy after ProjectionDays of inflow at the
// forecast peak, net of daily discharges.
func (r RiskScorer) projectedOccupancy(in RiskInput) float64 {
	beds := float64(in.TotalBeds)
	if beds <= 0 {
		beds = float64(r.cfg.DefaultTotalBeds)
	}
	discharge := r.cfg.DischargeRate * beds
	current := in.OccupancyPct / 100 * beds
	projected := current + (in.Summary.PeakValue-discharge)*float64(r.cfg.ProjectionDays)
	projected = clamp(projected, 0, beds)
	return projected / beds * 100
}

// inventoryLevel is informational; it does not drive the overall level.
func inventoryLevel(lowItems int) model.RiskLevel {
	switch {
	case lowItems >= 3:
		return model.RiskHigh
	case lowItems >= 1:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}
