package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/model"
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

func TestAdvise(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "narrative", status: http.StatusOK, body: `{"choices":[{"message":{"role":"assistant","content":"  Expect a surge.  "}}]}`, want: "Expect a surge."},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: true},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got completionReq
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, completionsPath, r.URL.Path)
				assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := New(&testLogger{}, Config{BaseURL: srv.URL, APIKey: "k"})
			require.NoError(t, err)

			advice, err := c.Advise(context.Background(), model.Decision{
				Facility: model.Facility{HospitalID: "H1", DepartmentID: "ED"},
				Risk:     model.RiskAssessment{Level: model.RiskHigh, Score: 70},
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, advice.Narrative)
			assert.Equal(t, DefaultModel, got.Model)
			require.Len(t, got.Messages, 2)
			assert.Contains(t, got.Messages[1].Content, "Facility: H1:ED")
			assert.Contains(t, got.Messages[1].Content, "Risk: High (70/100)")
		})
	}
}
