package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"pulse-srv/internal/model"
)

const (
	SeasonMonsoon    = "monsoon"
	SeasonWinter     = "winter"
	SeasonSummer     = "summer"
	SeasonPreMonsoon = "pre-monsoon"

	festivalMultiplier = 1.2
	festivalWindowDays = 30
)

// Season maps a date to its Indian climatological season.
func Season(t time.Time) string {
	switch t.Month() {
	case time.July, time.August, time.September:
		return SeasonMonsoon
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSummer
	default:
		return SeasonPreMonsoon
	}
}

// AnalyzePollution grades AQI impact. RiskScore is min(100, aqi/4).
func AnalyzePollution(aqi float64, now time.Time) model.PollutionAnalysis {
	a := model.PollutionAnalysis{
		AQI:                aqi,
		Category:           "Moderate",
		Multiplier:         1.0,
		RiskScore:          math.Min(100, math.Max(0, aqi)/4),
		AffectedConditions: []string{"asthma", "COPD", "bronchitis"},
	}
	switch now.Month() {
	case time.October, time.November, time.December, time.January:
		a.IsPollutionSeason = true
	}
	switch {
	case aqi > 250:
		a.Multiplier = 1.4
		a.Category = "Very Poor"
	case aqi > 150:
		a.Multiplier = 1.2
		a.Category = "Poor"
	}
	return a
}

// AnalyzeEpidemic reads an explicit tag of the form "disease[,disease][:severity]".
// Without a tag the seasonal pattern is used.
func AnalyzeEpidemic(tag string, now time.Time) model.EpidemicAnalysis {
	season := Season(now)
	tag = strings.TrimSpace(strings.ToLower(tag))
	if tag != "" && tag != "none" {
		names, sev := tag, ""
		if i := strings.LastIndex(tag, ":"); i >= 0 {
			names, sev = tag[:i], tag[i+1:]
		}
		severity := parseSeverity(sev)
		return model.EpidemicAnalysis{
			Active:     true,
			Diseases:   splitNames(names),
			Severity:   severity,
			Multiplier: epidemicMultiplier(severity),
			Season:     season,
			Source:     "signal",
		}
	}

	a := model.EpidemicAnalysis{Severity: model.SeverityLow, Multiplier: 1.0, Season: season, Source: "seasonal"}
	switch season {
	case SeasonMonsoon:
		a.Active = true
		a.Diseases = []string{"dengue", "malaria"}
		a.Severity = model.SeverityMedium
		a.Multiplier = 1.3
	case SeasonWinter:
		a.Active = true
		a.Diseases = []string{"influenza", "pneumonia"}
		a.Severity = model.SeverityMedium
		a.Multiplier = 1.2
	}
	return a
}

// AnalyzeFestival keeps festivals in the next 30 days, nearest first.
func AnalyzeFestival(sig model.ContextSignal, now time.Time) model.FestivalAnalysis {
	a := model.FestivalAnalysis{Active: sig.FestivalFlag, Multiplier: 1.0}
	if sig.FestivalFlag {
		a.Multiplier = festivalMultiplier
	}
	today := day(now)
	limit := today.AddDate(0, 0, festivalWindowDays)
	for _, f := range sig.Festivals {
		d := day(f.Date)
		if d.Before(today) || d.After(limit) {
			continue
		}
		a.Upcoming = append(a.Upcoming, f)
	}
	sort.SliceStable(a.Upcoming, func(i, j int) bool {
		return a.Upcoming[i].Date.Before(a.Upcoming[j].Date)
	})
	return a
}

func parseSeverity(s string) model.AlertSeverity {
	switch model.AlertSeverity(strings.TrimSpace(s)) {
	case model.SeverityLow:
		return model.SeverityLow
	case model.SeverityHigh:
		return model.SeverityHigh
	case model.SeverityCritical:
		return model.SeverityCritical
	default:
		return model.SeverityMedium
	}
}

func epidemicMultiplier(s model.AlertSeverity) float64 {
	switch s {
	case model.SeverityCritical:
		return 1.5
	case model.SeverityHigh:
		return 1.3
	case model.SeverityMedium:
		return 1.15
	default:
		return 1.05
	}
}

func splitNames(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
