package model

import "time"

// RiskLevel is the categorical operational risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Rank orders risk levels from Low (0) to Critical (3).
func (l RiskLevel) Rank() int {
	switch l {
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return 0
	}
}

// IsElevated reports whether the level requires alert persistence.
func (l RiskLevel) IsElevated() bool {
	return l == RiskHigh || l == RiskCritical
}

// RiskFactor is one weighted contribution to the composite score.
type RiskFactor struct {
	Name           string    `json:"name"`
	SubScore       float64   `json:"sub_score"`
	WeightedPoints float64   `json:"weighted_points"`
	Level          RiskLevel `json:"level"`
}

// RiskAssessment is the composite risk for a facility.
type RiskAssessment struct {
	Score               int          `json:"score"`
	Level               RiskLevel    `json:"level"`
	ContributingFactors []RiskFactor `json:"contributing_factors"`
	Breakdown           []string     `json:"breakdown"`
	SurgePct            float64      `json:"surge_pct"`
	ProjectedOccupancy  float64      `json:"projected_occupancy"`
}

// ShortageSeverity grades a capacity shortage.
type ShortageSeverity string

const (
	ShortageLow    ShortageSeverity = "LOW"
	ShortageMedium ShortageSeverity = "MEDIUM"
	ShortageHigh   ShortageSeverity = "HIGH"
)

// ShortageEstimate holds projected capacity gaps. Negative gaps mean surplus.
type ShortageEstimate struct {
	PredictedInflow float64            `json:"predicted_inflow"`
	BedsGap         float64            `json:"beds_gap"`
	StaffGap        float64            `json:"staff_gap"`
	SupplyGaps      map[string]float64 `json:"supply_gaps"`
	Severity        ShortageSeverity   `json:"severity"`
	UnknownCapacity []string           `json:"unknown_capacity,omitempty"`
}

// Capacity dimensions reported in ShortageEstimate.UnknownCapacity. An
// unknown dimension keeps a zero gap and does not drive the severity.
const (
	CapacityBeds  = "beds"
	CapacityStaff = "staff"
)

// HasSlack reports whether both beds and staff show spare capacity.
func (s ShortageEstimate) HasSlack() bool {
	return s.BedsGap < 0 && s.StaffGap < 0 && s.Severity == ShortageLow
}

// ActionCategory groups recommended actions.
type ActionCategory string

const (
	CategoryStaffing      ActionCategory = "staffing"
	CategorySupplies      ActionCategory = "supplies"
	CategoryBedManagement ActionCategory = "bed_management"
	CategoryAdvisory      ActionCategory = "advisory"
)

// Priority is the urgency of an action.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ActionItem is a single recommended action.
type ActionItem struct {
	Category    ActionCategory `json:"category"`
	Description string         `json:"description"`
	Priority    Priority       `json:"priority"`
}

// ActionPlan always carries every category, possibly empty.
type ActionPlan struct {
	Staffing      []ActionItem `json:"staffing"`
	Supplies      []ActionItem `json:"supplies"`
	BedManagement []ActionItem `json:"bed_management"`
	Advisory      []ActionItem `json:"advisory"`
}

// NewActionPlan returns a plan with every category initialised.
func NewActionPlan() ActionPlan {
	return ActionPlan{
		Staffing:      []ActionItem{},
		Supplies:      []ActionItem{},
		BedManagement: []ActionItem{},
		Advisory:      []ActionItem{},
	}
}

// Add appends item to its category.
func (p *ActionPlan) Add(item ActionItem) {
	switch item.Category {
	case CategoryStaffing:
		p.Staffing = append(p.Staffing, item)
	case CategorySupplies:
		p.Supplies = append(p.Supplies, item)
	case CategoryBedManagement:
		p.BedManagement = append(p.BedManagement, item)
	case CategoryAdvisory:
		p.Advisory = append(p.Advisory, item)
	}
}

// All flattens the plan in category order.
func (p ActionPlan) All() []ActionItem {
	all := make([]ActionItem, 0, len(p.Staffing)+len(p.Supplies)+len(p.BedManagement)+len(p.Advisory))
	all = append(all, p.Staffing...)
	all = append(all, p.BedManagement...)
	all = append(all, p.Supplies...)
	all = append(all, p.Advisory...)
	return all
}

// Recommendation is a broader, multi-step operational recommendation.
type Recommendation struct {
	Category    string         `json:"category"`
	Priority    string         `json:"priority"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Actions     []string       `json:"actions"`
	Timeline    string         `json:"timeline"`
	Metrics     map[string]any `json:"metrics,omitempty"`
}

// PollutionAnalysis describes the air-quality impact.
type PollutionAnalysis struct {
	AQI                float64  `json:"aqi"`
	Category           string   `json:"category"`
	Multiplier         float64  `json:"multiplier"`
	RiskScore          float64  `json:"risk_score"`
	IsPollutionSeason  bool     `json:"is_pollution_season"`
	AffectedConditions []string `json:"affected_conditions"`
}

// EpidemicAnalysis describes an active or seasonal epidemic signal.
type EpidemicAnalysis struct {
	Active     bool          `json:"active"`
	Diseases   []string      `json:"diseases"`
	Severity   AlertSeverity `json:"severity"`
	Multiplier float64       `json:"multiplier"`
	Season     string        `json:"season"`
	Source     string        `json:"source"`
}

// FestivalAnalysis describes festival impact over the horizon.
type FestivalAnalysis struct {
	Active     bool       `json:"active"`
	Multiplier float64    `json:"multiplier"`
	Upcoming   []Festival `json:"upcoming"`
}

// Decision is the full pipeline output for one facility.
type Decision struct {
	Facility        Facility          `json:"facility"`
	Forecast        Forecast          `json:"forecast"`
	Risk            RiskAssessment    `json:"risk"`
	Shortage        ShortageEstimate  `json:"shortage"`
	Actions         ActionPlan        `json:"actions"`
	Alerts          []Alert           `json:"alerts"`
	Recommendations []Recommendation  `json:"recommendations"`
	Pollution       PollutionAnalysis `json:"pollution"`
	Epidemic        EpidemicAnalysis  `json:"epidemic"`
	Festival        FestivalAnalysis  `json:"festival"`
	Narrative       string            `json:"narrative,omitempty"`
	GeneratedAt     time.Time         `json:"generated_at"`
}
