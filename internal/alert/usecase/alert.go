package usecase

import (
	"context"
	"errors"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/alert/repository"
	"pulse-srv/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input alert.ListInput) (alert.ListOutput, error) {
	hospitalID := input.HospitalID
	if hospitalID == "" && !sc.IsAdmin() {
		hospitalID = sc.HospitalID
	}
	if hospitalID != "" && !sc.CanAccessHospital(hospitalID) {
		return alert.ListOutput{}, alert.ErrForbidden
	}

	status := input.Status
	if status == "" {
		status = model.AlertStatusOpen
	}

	alerts, pag, err := uc.repo.Get(ctx, repository.GetOptions{
		Filter: repository.Filter{
			HospitalID: hospitalID,
			Status:     status,
			Severity:   input.Severity,
		},
		PaginateQuery: input.PaginateQuery,
	})
	if err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.List.Get: %v", err)
		return alert.ListOutput{}, err
	}

	return alert.ListOutput{Alerts: alerts, Pagination: pag}, nil
}

func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	if !sc.CanResolveAlerts() {
		return model.Alert{}, alert.ErrForbidden
	}

	a, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Alert{}, alert.ErrNotFound
		}
		uc.logger.Errorf(ctx, "internal.alert.usecase.Resolve.Detail: %v", err)
		return model.Alert{}, err
	}
	if !sc.CanAccessHospital(a.HospitalID) {
		return model.Alert{}, alert.ErrForbidden
	}

	resolved, err := uc.repo.Resolve(ctx, repository.ResolveOptions{
		ID:         id,
		ResolvedBy: sc.UserID,
		ResolvedAt: uc.clock().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Alert{}, alert.ErrNotFound
		}
		uc.logger.Errorf(ctx, "internal.alert.usecase.Resolve.Resolve: %v", err)
		return model.Alert{}, err
	}
	return resolved, nil
}
