package scheduler

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/log"
	"pulse-srv/pkg/metrics"
	postgresPkg "pulse-srv/pkg/postgre"
)

const metricKind = "scheduled"

func (s *implScheduler) Start(ctx context.Context) error {
	s.l.Infof(ctx, "internal.scheduler.Start: %d scopes every %s", len(s.cfg.Scopes), s.cfg.Interval)
	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "internal.scheduler.Start: stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *implScheduler) sweep(ctx context.Context) {
	start := s.clock()
	sum := s.RunOnce(ctx)
	s.l.Infof(ctx, "internal.scheduler.sweep: total=%d succeeded=%d failed=%d elevated=%d took=%s",
		sum.Total, sum.Succeeded, sum.Failed, sum.Elevated, s.clock().Sub(start))
}

// RunOnce runs every scope with at most Concurrency runs in flight. A failing
// scope is logged and counted; it never stops the others.
func (s *implScheduler) RunOnce(ctx context.Context) Summary {
	var (
		mu  sync.Mutex
		sum = Summary{Total: len(s.cfg.Scopes)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for _, f := range s.cfg.Scopes {
		g.Go(func() error {
			d, err := s.runScope(gctx, f)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				sum.Failed++
				return nil
			}
			sum.Succeeded++
			if d.Risk.Level.IsElevated() {
				sum.Elevated++
			}
			return nil
		})
	}
	_ = g.Wait()

	return sum
}

func (s *implScheduler) runScope(ctx context.Context, f model.Facility) (model.Decision, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()
	ctx = s.l.With(ctx, log.KeyHospital, f.HospitalID, log.KeyDepartment, f.DepartmentID, log.KeyRunID, postgresPkg.NewUUID())

	start := s.clock()
	d, err := s.uc.Run(ctx, forecast.RunInput{Facility: f, Horizon: s.cfg.Horizon})

	result := "ok"
	if err != nil {
		result = "error"
		s.l.Errorf(ctx, "internal.scheduler.runScope.Run: %v", err)
	} else {
		s.l.Debugf(ctx, "internal.scheduler.runScope.Run: risk=%s score=%d", d.Risk.Level, d.Risk.Score)
	}
	metrics.PipelineRuns.WithLabelValues(metricKind, result).Inc()
	metrics.PipelineDuration.WithLabelValues(metricKind).Observe(s.clock().Sub(start).Seconds())

	return d, err
}
