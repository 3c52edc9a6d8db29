package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/alert/repository"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/paginator"
)

type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) With(ctx context.Context, keysAndValues ...any) context.Context {
	return ctx
}
func (m *testLogger) Sync() error { return nil }

const alertID = "0b8f6f0e-4c1e-4d5a-9a57-1f1c2d3e4f50"

var (
	now              = time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)
	testAlertColumns = []string{"id", "ts", "hospital_id", "type", "severity", "title", "message", "metrics_json", "status", "ack_by", "ack_ts"}
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *implRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := New(&testLogger{}, db)
	repo.clock = func() time.Time { return now }
	return db, mock, repo
}

func TestCreate(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	alerts := []model.Alert{
		{ID: alertID, HospitalID: "H1", Type: model.AlertTypePatientSurge, Severity: model.SeverityCritical, Title: "Patient Surge Alert", CreatedAt: now},
		{HospitalID: "H1", Type: model.AlertTypePollutionRisk, Severity: model.SeverityHigh, Title: "Air Quality Alert"},
	}
	mock.ExpectExec(regexp.QuoteMeta(`VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9),($10,`)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Create(context.Background(), alerts)

	require.NoError(t, err)
	assert.NotEmpty(t, alerts[1].ID)
	assert.Equal(t, now, alerts[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_InvalidID(t *testing.T) {
	db, _, repo := setupMockDB(t)
	defer db.Close()

	err := repo.Create(context.Background(), []model.Alert{{ID: "not-a-uuid"}})
	assert.Error(t, err)
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		rows    *sqlmock.Rows
		want    model.Alert
		wantErr error
	}{
		{
			name: "found",
			id:   alertID,
			rows: sqlmock.NewRows(testAlertColumns).
				AddRow(alertID, now, "H1", "patient_surge", "critical", "Patient Surge Alert", "surge", []byte(`{"surge_pct":55}`), "open", nil, nil),
			want: model.Alert{
				ID: alertID, HospitalID: "H1", Type: model.AlertTypePatientSurge, Severity: model.SeverityCritical,
				Title: "Patient Surge Alert", Message: "surge", Metrics: map[string]any{"surge_pct": float64(55)},
				Status: model.AlertStatusOpen, CreatedAt: now,
			},
		},
		{name: "missing", id: alertID, rows: sqlmock.NewRows(testAlertColumns), wantErr: repository.ErrNotFound},
		{name: "malformed id", id: "42", wantErr: repository.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, repo := setupMockDB(t)
			defer db.Close()
			if tt.rows != nil {
				mock.ExpectQuery(`FROM operational_alerts WHERE id`).WithArgs(tt.id).WillReturnRows(tt.rows)
			}

			got, err := repo.Detail(context.Background(), tt.id)

			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGet(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) AS total FROM operational_alerts WHERE hospital_id = $1 AND status = $2`)).
		WithArgs("H1", "open").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(3))
	mock.ExpectQuery(`LIMIT 2 OFFSET 2`).
		WithArgs("H1", "open").
		WillReturnRows(sqlmock.NewRows(testAlertColumns).
			AddRow(alertID, now, "H1", "pollution_risk", "high", "Air Quality Alert", "aqi", nil, "open", nil, nil))

	got, pag, err := repo.Get(context.Background(), repository.GetOptions{
		Filter:        repository.Filter{HospitalID: "H1", Status: model.AlertStatusOpen},
		PaginateQuery: paginator.PaginateQuery{Page: 2, Limit: 2},
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.SeverityHigh, got[0].Severity)
	assert.Nil(t, got[0].Metrics)
	assert.Equal(t, paginator.Paginator{Total: 3, Count: 1, PerPage: 2, CurrentPage: 2}, pag)
	assert.False(t, pag.HasNextPage())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	resolvedAt := now.Add(time.Hour)
	mock.ExpectQuery(`UPDATE operational_alerts SET status`).
		WithArgs(alertID, "resolved", "planner-1", resolvedAt, "open").
		WillReturnRows(sqlmock.NewRows(testAlertColumns).
			AddRow(alertID, now, "H1", "patient_surge", "critical", "Patient Surge Alert", "surge", nil, "resolved", "planner-1", resolvedAt))

	got, err := repo.Resolve(context.Background(), repository.ResolveOptions{ID: alertID, ResolvedBy: "planner-1", ResolvedAt: resolvedAt})

	require.NoError(t, err)
	assert.Equal(t, model.AlertStatusResolved, got.Status)
	assert.Equal(t, "planner-1", got.ResolvedBy)
	require.NotNil(t, got.ResolvedAt)
	assert.True(t, resolvedAt.Equal(*got.ResolvedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_AlreadyResolved(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE operational_alerts SET status`).
		WithArgs(alertID, "resolved", "planner-1", now, "open").
		WillReturnRows(sqlmock.NewRows(testAlertColumns))

	_, err := repo.Resolve(context.Background(), repository.ResolveOptions{ID: alertID, ResolvedBy: "planner-1"})

	assert.Equal(t, repository.ErrNotFound, err)
}
