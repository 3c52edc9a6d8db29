package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/log"
)

var ErrNoScopes = errors.New("scheduler: no scopes configured")

// Scheduler re-runs the forecasting pipeline for every scope on a fixed interval.
type Scheduler interface {
	// Start sweeps once immediately, then on every tick until ctx is done.
	Start(ctx context.Context) error
	RunOnce(ctx context.Context) Summary
}

type implScheduler struct {
	l     log.Logger
	uc    forecast.UseCase
	cfg   Config
	clock func() time.Time
}

func New(l log.Logger, uc forecast.UseCase, cfg Config) (Scheduler, error) {
	if len(cfg.Scopes) == 0 {
		return nil, ErrNoScopes
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}
	return &implScheduler{l: l, uc: uc, cfg: cfg, clock: time.Now}, nil
}

// ParseScopes turns "H1:ED" entries into facilities. A bare hospital id
// is not accepted.
func ParseScopes(raw []string) ([]model.Facility, error) {
	seen := make(map[model.Facility]bool, len(raw))
	scopes := make([]model.Facility, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		hospitalID, departmentID, ok := strings.Cut(s, ":")
		hospitalID = strings.TrimSpace(hospitalID)
		departmentID = strings.TrimSpace(departmentID)
		if !ok || hospitalID == "" || departmentID == "" {
			return nil, fmt.Errorf("scheduler: invalid scope %q, want HOSPITAL:DEPARTMENT", s)
		}
		f := model.Facility{HospitalID: hospitalID, DepartmentID: departmentID}
		if seen[f] {
			continue
		}
		seen[f] = true
		scopes = append(scopes, f)
	}
	return scopes, nil
}
