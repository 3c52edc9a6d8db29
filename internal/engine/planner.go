package engine

import (
	"fmt"
	"math"

	"pulse-srv/internal/model"
)

const (
	overflowThreshold      = 85.0
	electiveSurgeThreshold = 15.0
	respiratoryAQI         = 200.0
	staffAdvisoryAQI       = 150.0
)

// PlanInput is what the action rules look at.
type PlanInput struct {
	Risk      model.RiskAssessment
	Shortage  model.ShortageEstimate
	AQI       float64
	Inventory []model.InventoryItem
}

// rule contributes zero or more actions. Rules never see each other's output.
type rule func(in PlanInput) []model.ActionItem

var planRules = []rule{
	staffingEscalation,
	staffingStandby,
	staffGapRequest,
	overflowWard,
	deferElectives,
	bedGapRequest,
	supplyReorder,
	respiratoryStock,
	advisory,
}

// PlanActions applies every rule and groups the result by category.
func PlanActions(in PlanInput) model.ActionPlan {
	plan := model.NewActionPlan()
	for _, r := range planRules {
		for _, item := range r(in) {
			plan.Add(item)
		}
	}
	return plan
}

func staffingEscalation(in PlanInput) []model.ActionItem {
	if !in.Risk.Level.IsElevated() {
		return nil
	}
	first := model.PriorityHigh
	if in.Risk.Level == model.RiskCritical {
		first = model.PriorityCritical
	}
	return []model.ActionItem{
		{Category: model.CategoryStaffing, Description: "Activate on-call doctors immediately", Priority: first},
		{Category: model.CategoryStaffing, Description: "Double nursing shift strength", Priority: model.PriorityHigh},
	}
}

// staffingStandby is skipped when the shortage estimate shows spare capacity.
func staffingStandby(in PlanInput) []model.ActionItem {
	if in.Risk.Level != model.RiskModerate || in.Shortage.HasSlack() {
		return nil
	}
	return []model.ActionItem{
		{Category: model.CategoryStaffing, Description: "Place on-call doctors on standby", Priority: model.PriorityMedium},
	}
}

func staffGapRequest(in PlanInput) []model.ActionItem {
	if in.Shortage.StaffGap <= 0 {
		return nil
	}
	return []model.ActionItem{{
		Category:    model.CategoryStaffing,
		Description: fmt.Sprintf("Call in %d additional staff for the projected inflow", int(math.Ceil(in.Shortage.StaffGap))),
		Priority:    shortagePriority(in.Shortage.Severity),
	}}
}

// overflowWard scales priority with the distance above the threshold.
func overflowWard(in PlanInput) []model.ActionItem {
	occ := in.Risk.ProjectedOccupancy
	if occ <= overflowThreshold {
		return nil
	}
	p := model.PriorityMedium
	switch {
	case occ > 95:
		p = model.PriorityCritical
	case occ > 90:
		p = model.PriorityHigh
	}
	return []model.ActionItem{{
		Category:    model.CategoryBedManagement,
		Description: fmt.Sprintf("Open overflow ward B (projected occupancy %.0f%%)", occ),
		Priority:    p,
	}}
}

func deferElectives(in PlanInput) []model.ActionItem {
	if in.Risk.SurgePct <= electiveSurgeThreshold {
		return nil
	}
	return []model.ActionItem{
		{Category: model.CategoryBedManagement, Description: "Defer non-urgent elective procedures", Priority: model.PriorityHigh},
	}
}

func bedGapRequest(in PlanInput) []model.ActionItem {
	if in.Shortage.BedsGap <= 0 {
		return nil
	}
	return []model.ActionItem{{
		Category:    model.CategoryBedManagement,
		Description: fmt.Sprintf("Free up %d beds through expedited discharges", int(math.Ceil(in.Shortage.BedsGap))),
		Priority:    shortagePriority(in.Shortage.Severity),
	}}
}

func supplyReorder(in PlanInput) []model.ActionItem {
	var items []model.ActionItem
	for _, it := range in.Inventory {
		if !it.IsLow() {
			continue
		}
		p := model.PriorityHigh
		if it.CurrentStock == 0 {
			p = model.PriorityCritical
		}
		items = append(items, model.ActionItem{
			Category:    model.CategorySupplies,
			Description: fmt.Sprintf("Urgent reorder: %s", it.ItemName),
			Priority:    p,
		})
	}
	return items
}

func respiratoryStock(in PlanInput) []model.ActionItem {
	if in.AQI <= respiratoryAQI {
		return nil
	}
	return []model.ActionItem{
		{Category: model.CategorySupplies, Description: "Stock additional oxygen cylinders and nebulizers", Priority: model.PriorityHigh},
	}
}

func advisory(in PlanInput) []model.ActionItem {
	switch {
	case in.Risk.Level.IsElevated():
		return []model.ActionItem{
			{Category: model.CategoryAdvisory, Description: "Issue public health advisory", Priority: model.PriorityHigh},
		}
	case in.AQI > staffAdvisoryAQI:
		return []model.ActionItem{
			{Category: model.CategoryAdvisory, Description: "Internal staff advisory", Priority: model.PriorityMedium},
		}
	}
	return nil
}

func shortagePriority(s model.ShortageSeverity) model.Priority {
	switch s {
	case model.ShortageHigh:
		return model.PriorityHigh
	case model.ShortageMedium:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
