package scheduler

import (
	"time"

	"pulse-srv/internal/model"
)

const (
	defaultInterval    = 6 * time.Hour
	defaultConcurrency = 4
	defaultRunTimeout  = 2 * time.Minute
)

// Config drives the periodic pipeline.
type Config struct {
	Interval    time.Duration
	Concurrency int
	Horizon     int
	RunTimeout  time.Duration
	Scopes      []model.Facility
}

// Summary reports one sweep over every configured scope.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elevated  int
}
