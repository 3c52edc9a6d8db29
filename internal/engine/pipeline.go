package engine

import (
	"context"
	"errors"
	"math"
	"time"

	"pulse-srv/internal/model"
)

// Input is everything one run needs for a single facility scope. The engine
// performs no I/O; collaborators load these values beforehand.
type Input struct {
	Facility    model.Facility
	Signals     Signals
	Snapshot    model.ResourceSnapshot
	Context     model.ContextSignal
	Inventory   []model.InventoryItem
	Horizon     int
	Scenario    model.Scenario
	AQIOverride *float64
	Now         time.Time
}

// Engine composes the pipeline stages. It holds no mutable state and may be
// shared across goroutines.
type Engine struct {
	forecaster TrendForecaster
	risk       RiskScorer
	shortage   ShortageEstimator
	alerts     AlertRanker
	advisor    Advisor
}

// Option customizes an Engine.
type Option func(*options)

type options struct {
	external ExternalModel
	advisor  Advisor
	newID    func() string
}

// WithExternalModel consults m before the trend model.
func WithExternalModel(m ExternalModel) Option {
	return func(o *options) { o.external = m }
}

// WithAdvisor enriches finished decisions with a narrative.
func WithAdvisor(a Advisor) Option {
	return func(o *options) { o.advisor = a }
}

// WithIDGenerator replaces the alert ID source.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// New builds an Engine.
func New(cfg Config, opts ...Option) Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Engine{
		forecaster: NewTrendForecaster(cfg, o.external),
		risk:       NewRiskScorer(cfg),
		shortage:   NewShortageEstimator(cfg),
		alerts:     NewAlertRanker(o.newID),
		advisor:    o.advisor,
	}
}

// WithoutAdvisor returns a copy that skips the advisor stage.
func (e Engine) WithoutAdvisor() Engine {
	e.advisor = nil
	return e
}

// Forecast runs the aggregation, trend and scenario stages only.
func (e Engine) Forecast(ctx context.Context, in Input) (model.Forecast, model.FeatureFrame, error) {
	if err := validate(in); err != nil {
		return model.Forecast{}, model.FeatureFrame{}, err
	}

	frame, err := Aggregate(in.Signals)
	if err != nil && !errors.Is(err, ErrInsufficientData) {
		return model.Forecast{}, model.FeatureFrame{}, err
	}

	base, err := e.forecaster.Forecast(ctx, frame.History(), in.Horizon, in.Now)
	if err != nil {
		return model.Forecast{}, frame, err
	}

	scenario := ScenarioInput{
		CurrentAQI:  currentAQI(in, frame),
		AQIOverride: in.AQIOverride,
		Festival:    in.Context.FestivalFlag,
		Scenario:    in.Scenario,
	}
	points := Adjust(base.Points, scenario)
	summary := Summarize(points, base.Source, scenario)
	summary.FallbackReason = base.FallbackReason
	if len(base.Points) > 0 && base.HistoryUsed == 0 {
		summary.FallbackReason = "no admission history"
	}

	return model.Forecast{Points: points, Summary: summary}, frame, nil
}

// Run executes the whole pipeline and returns the structured decision.
func (e Engine) Run(ctx context.Context, in Input) (model.Decision, error) {
	fc, frame, err := e.Forecast(ctx, in)
	if err != nil {
		return model.Decision{}, err
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	occupancy, totalBeds := occupancyOf(in.Snapshot, frame)
	aqi := fc.Summary.AQIUsed

	risk, err := e.risk.Score(RiskInput{
		OccupancyPct: occupancy,
		AQI:          aqi,
		Summary:      fc.Summary,
		Inventory:    in.Inventory,
		TotalBeds:    totalBeds,
	})
	if err != nil {
		return model.Decision{}, err
	}

	capacity := capacityOf(in.Snapshot, frame)
	capacity.PredictedInflow = fc.Summary.PeakValue
	capacity.Inventory = in.Inventory
	shortage, err := e.shortage.Estimate(capacity)
	if err != nil {
		return model.Decision{}, err
	}

	actions := PlanActions(PlanInput{Risk: risk, Shortage: shortage, AQI: aqi, Inventory: in.Inventory})

	pollution := AnalyzePollution(aqi, now)
	epidemic := AnalyzeEpidemic(in.Context.EpidemicTag, now)
	festival := AnalyzeFestival(in.Context, now)

	d := model.Decision{
		Facility:  in.Facility,
		Forecast:  fc,
		Risk:      risk,
		Shortage:  shortage,
		Actions:   actions,
		Pollution: pollution,
		Epidemic:  epidemic,
		Festival:  festival,
		Alerts: e.alerts.Generate(AlertInput{
			Risk:      risk,
			Summary:   fc.Summary,
			Pollution: pollution,
			Epidemic:  epidemic,
			Festival:  festival,
			Now:       now,
		}),
		Recommendations: Recommend(RecommendationInput{
			SurgePct:  risk.SurgePct,
			Pollution: pollution,
			Epidemic:  epidemic,
			Festival:  festival,
		}),
		GeneratedAt: now,
	}
	for i := range d.Alerts {
		d.Alerts[i].HospitalID = in.Facility.HospitalID
	}

	return e.advise(ctx, d), nil
}

// advise applies the optional advisor. Its failures leave the decision as is.
func (e Engine) advise(ctx context.Context, d model.Decision) model.Decision {
	if e.advisor == nil {
		return d
	}
	adv, err := e.advisor.Advise(ctx, d)
	if err != nil {
		return d
	}
	d.Narrative = adv.Narrative
	if len(adv.Actions) == 0 {
		return d
	}
	plan := model.NewActionPlan()
	for _, item := range d.Actions.All() {
		plan.Add(item)
	}
	for _, item := range adv.Actions {
		plan.Add(item)
	}
	d.Actions = plan
	return d
}

func validate(in Input) error {
	switch {
	case in.Horizon < 0:
		return invalid("horizon", "must not be negative")
	case in.Scenario != "" && !in.Scenario.IsValid():
		return invalid("scenario", "unknown scenario "+string(in.Scenario))
	case in.AQIOverride != nil && *in.AQIOverride < 0:
		return invalid("aqi_override", "must not be negative")
	case in.Context.AQI < 0:
		return invalid("aqi", "must not be negative")
	case in.Snapshot.BedsTotal < 0 || in.Snapshot.BedsOccupied < 0:
		return invalid("beds", "must not be negative")
	case in.Snapshot.StaffOnShift < 0:
		return invalid("staff_on_shift", "must not be negative")
	}
	for _, it := range in.Inventory {
		if it.CurrentStock < 0 || it.MinThreshold < 0 {
			return invalid("inventory", "negative stock for "+it.ItemName)
		}
	}
	return nil
}

// currentAQI prefers the context signal, then the latest aggregated reading.
func currentAQI(in Input, frame model.FeatureFrame) float64 {
	if !in.Context.Timestamp.IsZero() {
		return in.Context.AQI
	}
	if r, ok := frame.Latest(); ok && r.AQI > 0 {
		return r.AQI
	}
	return DefaultAQI
}

// occupancyOf prefers the snapshot, then the latest aggregated bed reading.
func occupancyOf(s model.ResourceSnapshot, frame model.FeatureFrame) (float64, int) {
	if s.BedsTotal > 0 {
		return s.OccupancyPct(), s.BedsTotal
	}
	if r, ok := frame.Latest(); ok && r.TotalBeds > 0 {
		return r.OccupiedBeds / r.TotalBeds * 100, int(r.TotalBeds)
	}
	return 0, 0
}

// capacityOf reads beds from the snapshot, then the latest aggregated bed
// reading. Staff on shift is only known from a snapshot.
func capacityOf(s model.ResourceSnapshot, frame model.FeatureFrame) ShortageInput {
	var out ShortageInput
	switch r, ok := frame.Latest(); {
	case s.BedsTotal > 0:
		out.AvailableBeds = float64(s.AvailableBeds())
	case ok && r.TotalBeds > 0:
		out.AvailableBeds = math.Max(0, r.TotalBeds-r.OccupiedBeds)
	default:
		out.BedsUnknown = true
	}
	if s.Timestamp.IsZero() && s.BedsTotal == 0 && s.StaffOnShift == 0 {
		out.StaffUnknown = true
	} else {
		out.StaffOnShift = float64(s.StaffOnShift)
	}
	return out
}
