package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"

	"pulse-srv/internal/alert/repository"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/paginator"
	postgresPkg "pulse-srv/pkg/postgre"
)

// Create inserts every alert in one statement. Missing IDs are generated.
func (r *implRepository) Create(ctx context.Context, alerts []model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	args := make([]any, 0, len(alerts)*alertColumns)
	for i := range alerts {
		if alerts[i].ID == "" {
			alerts[i].ID = postgresPkg.NewUUID()
		} else if err := postgresPkg.IsUUID(alerts[i].ID); err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.IsUUID: %v", err)
			return err
		}
		if alerts[i].CreatedAt.IsZero() {
			alerts[i].CreatedAt = r.clock().UTC()
		}

		a, err := toArgs(alerts[i])
		if err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.toArgs: %v", err)
			return errors.Wrap(err, "marshal alert metrics")
		}
		args = append(args, a...)
	}

	query := insertAlertPrefix + strmangle.Placeholders(true, len(args), 1, alertColumns)
	if _, err := queries.Raw(query, args...).ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.ExecContext: %v", err)
		return errors.Wrap(err, "insert alerts")
	}
	return nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Alert, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.Alert{}, repository.ErrNotFound
	}

	var row alertRow
	if err := queries.Raw(detailAlertQuery, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Detail.Bind: %v", err)
		return model.Alert{}, errors.Wrap(err, "alert detail")
	}
	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Alert, paginator.Paginator, error) {
	pq := opts.PaginateQuery
	pq.Adjust()
	page, count, args := r.buildGetQuery(opts, pq)

	var total countRow
	if err := queries.Raw(count, args...).Bind(ctx, r.db, &total); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count alerts")
	}

	var rows []alertRow
	if err := queries.Raw(page, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "list alerts")
	}

	res := make([]model.Alert, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, paginator.Paginator{
		Total:       total.Total,
		Count:       int64(len(res)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

// Resolve closes an open alert. Already resolved or unknown IDs yield ErrNotFound.
func (r *implRepository) Resolve(ctx context.Context, opts repository.ResolveOptions) (model.Alert, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		return model.Alert{}, repository.ErrNotFound
	}
	at := opts.ResolvedAt
	if at.IsZero() {
		at = r.clock().UTC()
	}

	var row alertRow
	err := queries.Raw(resolveAlertQuery,
		opts.ID,
		string(model.AlertStatusResolved),
		opts.ResolvedBy,
		at,
		string(model.AlertStatusOpen),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Resolve.Bind: %v", err)
		return model.Alert{}, errors.Wrap(err, "resolve alert")
	}
	return row.toModel(), nil
}
