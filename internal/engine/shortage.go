package engine

import (
	"math"
	"slices"

	"pulse-srv/internal/model"
)

const (
	shortageHighRatio   = 0.3
	shortageMediumRatio = 0.15
)

// ShortageInput is the capacity picture for the horizon day of interest.
// An unknown dimension is left out of the gaps and the severity.
type ShortageInput struct {
	PredictedInflow float64
	AvailableBeds   float64
	StaffOnShift    float64
	BedsUnknown     bool
	StaffUnknown    bool
	Inventory       []model.InventoryItem
}

// ShortageEstimator turns predicted inflow into bed and staff gaps.
type ShortageEstimator struct {
	cfg Config
}

func NewShortageEstimator(cfg Config) ShortageEstimator {
	return ShortageEstimator{cfg: cfg.withDefaults()}
}

// Estimate computes the gaps. Negative gaps are surplus and are kept as is.
func (e ShortageEstimator) Estimate(in ShortageInput) (model.ShortageEstimate, error) {
	switch {
	case in.PredictedInflow < 0 || math.IsNaN(in.PredictedInflow):
		return model.ShortageEstimate{}, invalid("predicted_inflow", "must not be negative")
	case in.AvailableBeds < 0:
		return model.ShortageEstimate{}, invalid("available_beds", "must not be negative")
	case in.StaffOnShift < 0:
		return model.ShortageEstimate{}, invalid("staff_on_shift", "must not be negative")
	}

	supply := map[string]float64{}
	for _, it := range in.Inventory {
		if it.CurrentStock < 0 || it.MinThreshold < 0 {
			return model.ShortageEstimate{}, invalid("inventory", "negative stock for "+it.ItemName)
		}
		if it.IsLow() {
			supply[it.ItemName] = float64(it.Deficit())
		}
	}

	var (
		bedsGap, staffGap float64
		gaps              []float64
		unknown           []string
	)
	denom := math.Max(1, in.AvailableBeds)
	if in.BedsUnknown {
		unknown = append(unknown, model.CapacityBeds)
		denom = math.Max(1, in.StaffOnShift)
	} else {
		bedsGap = in.PredictedInflow*e.cfg.LengthOfStayFactor - in.AvailableBeds
		gaps = append(gaps, bedsGap)
	}
	if in.StaffUnknown {
		unknown = append(unknown, model.CapacityStaff)
	} else {
		staffGap = in.PredictedInflow*e.cfg.StaffRatio - in.StaffOnShift
		gaps = append(gaps, staffGap)
	}

	severity := model.ShortageLow
	if len(gaps) > 0 {
		ratio := slices.Max(gaps) / denom
		switch {
		case ratio > shortageHighRatio:
			severity = model.ShortageHigh
		case ratio > shortageMediumRatio:
			severity = model.ShortageMedium
		}
	}

	return model.ShortageEstimate{
		PredictedInflow: in.PredictedInflow,
		BedsGap:         bedsGap,
		StaffGap:        staffGap,
		SupplyGaps:      supply,
		Severity:        severity,
		UnknownCapacity: unknown,
	}, nil
}
