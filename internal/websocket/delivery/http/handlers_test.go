package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/middleware"
	"pulse-srv/internal/model"
	ws "pulse-srv/internal/websocket"
	"pulse-srv/internal/websocket/usecase"
	"pulse-srv/pkg/scope"
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

func testConfig() ws.Config {
	return ws.Config{
		MaxConnections: 10,
		PongWait:       time.Minute,
		PingPeriod:     30 * time.Second,
		WriteWait:      time.Second,
		MaxMessageSize: 512,
	}
}

func setup(t *testing.T) (*httptest.Server, ws.UseCase, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr, err := scope.New("secret")
	require.NoError(t, err)
	uc := usecase.New(&testLogger{}, testConfig())
	go uc.Run()
	t.Cleanup(func() { uc.Shutdown(context.Background()) })

	r := gin.New()
	New(uc, mgr, &testLogger{}, testConfig()).RegisterRoutes(r.Group("/api/v1"), middleware.New(&testLogger{}, mgr))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, uc, mgr
}

func token(t *testing.T, mgr scope.Manager, role, hospitalID string) string {
	t.Helper()
	tok, err := mgr.CreateToken(scope.Payload{UserID: "u-" + role, Role: role, HospitalID: hospitalID})
	require.NoError(t, err)
	return tok
}

func TestHandleWebSocket_Rejects(t *testing.T) {
	srv, _, mgr := setup(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "missing token", query: "", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", query: "?token=garbage", wantStatus: http.StatusUnauthorized},
		{name: "foreign hospital", query: "?token=" + token(t, mgr, model.RoleViewer, "H1") + "&hospital_id=H2", wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/v1/ws" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleWebSocket_StreamsAlerts(t *testing.T) {
	srv, uc, mgr := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws?token=" + token(t, mgr, model.RolePlanner, "H1")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		stats, _ := uc.GetStats(context.Background())
		return stats.ActiveConnections == 1
	}, time.Second, 5*time.Millisecond)

	payload, err := json.Marshal(model.Alert{ID: "a1", HospitalID: "H1", Severity: model.SeverityHigh, Title: "Patient Surge Alert"})
	require.NoError(t, err)
	require.NoError(t, uc.ProcessMessage(context.Background(), ws.ProcessMessageInput{
		Channel: ws.AlertChannel("H1", "high"),
		Payload: payload,
	}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var out struct {
		Type    ws.MessageType `json:"type"`
		Payload model.Alert    `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg, &out))
	assert.Equal(t, ws.MessageTypeAlert, out.Type)
	assert.Equal(t, "a1", out.Payload.ID)
}

func TestStats_RequiresAuth(t *testing.T) {
	srv, _, mgr := setup(t)

	resp, err := http.Get(srv.URL + "/api/v1/ws/stats")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/ws/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, mgr, model.RoleAdmin, ""))
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
