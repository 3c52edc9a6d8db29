package engine

const (
	DefaultHorizon            = 7
	DefaultHistoryWindow      = 90
	DefaultFallbackValue      = 50.0
	DefaultFallbackBand       = 0.2
	DefaultMinNoise           = 5.0
	DefaultConfidenceZ        = 1.5
	DefaultLengthOfStayFactor = 0.4
	DefaultStaffRatio         = 0.2
	DefaultTotalBeds          = 500
	DefaultDischargeRate      = 0.15
	DefaultProjectionDays     = 3
	DefaultMinExternalPoints  = 30
	DefaultAQI                = 100.0
)

// Config carries the tunable constants of the pipeline.
type Config struct {
	Horizon            int
	HistoryWindow      int
	FallbackValue      float64
	FallbackBand       float64
	MinNoise           float64
	ConfidenceZ        float64
	LengthOfStayFactor float64
	StaffRatio         float64
	DefaultTotalBeds   int
	DischargeRate      float64
	ProjectionDays     int
	MinExternalPoints  int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Horizon:            DefaultHorizon,
		HistoryWindow:      DefaultHistoryWindow,
		FallbackValue:      DefaultFallbackValue,
		FallbackBand:       DefaultFallbackBand,
		MinNoise:           DefaultMinNoise,
		ConfidenceZ:        DefaultConfidenceZ,
		LengthOfStayFactor: DefaultLengthOfStayFactor,
		StaffRatio:         DefaultStaffRatio,
		DefaultTotalBeds:   DefaultTotalBeds,
		DischargeRate:      DefaultDischargeRate,
		ProjectionDays:     DefaultProjectionDays,
		MinExternalPoints:  DefaultMinExternalPoints,
	}
}

// withDefaults fills zero values so a partially populated Config is usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Horizon <= 0 {
		c.Horizon = d.Horizon
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = d.HistoryWindow
	}
	if c.FallbackValue <= 0 {
		c.FallbackValue = d.FallbackValue
	}
	if c.FallbackBand <= 0 {
		c.FallbackBand = d.FallbackBand
	}
	if c.MinNoise <= 0 {
		c.MinNoise = d.MinNoise
	}
	if c.ConfidenceZ <= 0 {
		c.ConfidenceZ = d.ConfidenceZ
	}
	if c.LengthOfStayFactor <= 0 {
		c.LengthOfStayFactor = d.LengthOfStayFactor
	}
	if c.StaffRatio <= 0 {
		c.StaffRatio = d.StaffRatio
	}
	if c.DefaultTotalBeds <= 0 {
		c.DefaultTotalBeds = d.DefaultTotalBeds
	}
	if c.DischargeRate <= 0 {
		c.DischargeRate = d.DischargeRate
	}
	if c.ProjectionDays <= 0 {
		c.ProjectionDays = d.ProjectionDays
	}
	if c.MinExternalPoints <= 0 {
		c.MinExternalPoints = d.MinExternalPoints
	}
	return c
}
