package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/model"
	"pulse-srv/internal/signal/repository"
)

// loadInput gathers every collaborator input of one run concurrently.
// A failed admissions lookup degrades to an empty history so the engine
// falls back instead of failing the request.
func (uc *implUseCase) loadInput(ctx context.Context, input forecast.ForecastInput, now time.Time) (engine.Input, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	past := repository.RangeOptions{
		Facility: input.Facility,
		From:     today.AddDate(0, 0, -uc.cfg.HistoryWindow),
		To:       today.AddDate(0, 0, 1),
	}
	upcoming := repository.RangeOptions{
		Facility: input.Facility,
		From:     today,
		To:       today.AddDate(0, 0, upcomingFestivalDays+1),
	}

	in := engine.Input{
		Facility:    input.Facility,
		Horizon:     input.Horizon,
		Scenario:    input.Scenario,
		AQIOverride: input.AQIOverride,
		Now:         now,
	}
	var festivals []model.Festival

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := uc.repo.ListAdmissions(gctx, past)
		if err != nil {
			uc.l.Warnf(ctx, "internal.forecast.usecase.loadInput.ListAdmissions: %v", err)
			return nil
		}
		in.Signals.Admissions = h
		return nil
	})
	g.Go(func() (err error) {
		in.Signals.AQI, err = uc.repo.ListAQI(gctx, past)
		return err
	})
	g.Go(func() (err error) {
		in.Signals.Beds, err = uc.repo.ListBeds(gctx, past)
		return err
	})
	g.Go(func() (err error) {
		in.Signals.Weather, err = uc.repo.ListWeather(gctx, past)
		return err
	})
	g.Go(func() (err error) {
		in.Signals.Events, err = uc.repo.ListEvents(gctx, past)
		return err
	})
	g.Go(func() (err error) {
		festivals, err = uc.repo.ListFestivals(gctx, upcoming)
		return err
	})
	g.Go(func() (err error) {
		in.Inventory, err = uc.repo.ListInventory(gctx, input.Facility.HospitalID)
		return err
	})
	g.Go(func() error {
		s, err := uc.repo.LatestSnapshot(gctx, input.Facility.HospitalID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		in.Snapshot = s
		return nil
	})
	g.Go(func() error {
		c, err := uc.repo.LatestContext(gctx, input.Facility.HospitalID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		in.Context = c
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.forecast.usecase.loadInput.Wait: %v", err)
		return engine.Input{}, err
	}

	in.Context.Festivals = append(in.Context.Festivals, festivals...)
	if input.Festival != nil {
		in.Context.FestivalFlag = *input.Festival
	}
	return in, nil
}
