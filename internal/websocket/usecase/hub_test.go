package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/model"
	ws "pulse-srv/internal/websocket"
)

// testLogger implements log.Logger for testing
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

func testConn(hub *Hub, scope model.Scope, hospitalID string) *Connection {
	return newConnection(hub, nil, scope, hospitalID, ws.Config{}, &testLogger{})
}

func startHub(t *testing.T, conns ...*Connection) *Hub {
	t.Helper()
	hub := conns[0].hub
	go hub.run()
	t.Cleanup(hub.stop)

	for _, c := range conns {
		require.True(t, hub.add(c))
	}
	require.Eventually(t, func() bool {
		active, _ := hub.Stats()
		return active == len(conns)
	}, time.Second, 5*time.Millisecond)
	return hub
}

func received(c *Connection) bool {
	select {
	case <-c.send:
		return true
	default:
		return false
	}
}

func TestHubSendToHospital(t *testing.T) {
	hub := newHub(&testLogger{}, 10)

	planner := testConn(hub, model.Scope{UserID: "u1", Role: model.RolePlanner, HospitalID: "H1"}, "")
	otherHospital := testConn(hub, model.Scope{UserID: "u2", Role: model.RoleViewer, HospitalID: "H2"}, "")
	admin := testConn(hub, model.Scope{UserID: "admin", Role: model.RoleAdmin}, "")
	adminFiltered := testConn(hub, model.Scope{UserID: "admin", Role: model.RoleAdmin}, "H2")

	startHub(t, planner, otherHospital, admin, adminFiltered)

	n := hub.SendToHospital("H1", []byte(`{}`))

	assert.Equal(t, 2, n)
	assert.True(t, received(planner))
	assert.True(t, received(admin))
	assert.False(t, received(otherHospital))
	assert.False(t, received(adminFiltered))
}

func TestHubStats(t *testing.T) {
	hub := newHub(&testLogger{}, 10)
	a := testConn(hub, model.Scope{UserID: "u1"}, "")
	b := testConn(hub, model.Scope{UserID: "u1"}, "")
	c := testConn(hub, model.Scope{UserID: "u2"}, "")
	startHub(t, a, b, c)

	active, users := hub.Stats()
	assert.Equal(t, 3, active)
	assert.Equal(t, 2, users)

	hub.remove(a)
	require.Eventually(t, func() bool {
		active, _ := hub.Stats()
		return active == 2
	}, time.Second, 5*time.Millisecond)

	_, users = hub.Stats()
	assert.Equal(t, 2, users)
	_, open := <-a.send
	assert.False(t, open)
}

func TestHubBroadcast(t *testing.T) {
	hub := newHub(&testLogger{}, 10)
	a := testConn(hub, model.Scope{UserID: "u1", HospitalID: "H1"}, "")
	b := testConn(hub, model.Scope{UserID: "u2", HospitalID: "H2"}, "")
	startHub(t, a, b)

	hub.Broadcast([]byte("maintenance"))

	assert.Equal(t, []byte("maintenance"), <-a.send)
	assert.Equal(t, []byte("maintenance"), <-b.send)
}

func TestHubFull(t *testing.T) {
	hub := newHub(&testLogger{}, 1)
	startHub(t, testConn(hub, model.Scope{UserID: "u1"}, ""))

	assert.True(t, hub.full())
	assert.False(t, newHub(&testLogger{}, 0).full())
}

func TestHubStop(t *testing.T) {
	hub := newHub(&testLogger{}, 10)
	a := testConn(hub, model.Scope{UserID: "u1"}, "")
	startHub(t, a)

	hub.stop()

	_, open := <-a.send
	assert.False(t, open)
	assert.False(t, hub.add(testConn(hub, model.Scope{UserID: "u2"}, "")))
}

func TestProcessMessage(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	hub := newHub(&testLogger{}, 10)
	h1 := testConn(hub, model.Scope{UserID: "u1", Role: model.RolePlanner, HospitalID: "H1"}, "")
	h2 := testConn(hub, model.Scope{UserID: "u2", Role: model.RolePlanner, HospitalID: "H2"}, "")
	startHub(t, h1, h2)

	uc := &implUseCase{hub: hub, logger: &testLogger{}, now: func() time.Time { return now }}

	t.Run("alert routed by hospital", func(t *testing.T) {
		payload, err := json.Marshal(model.Alert{ID: "a1", Type: model.AlertTypePatientSurge, Severity: model.SeverityCritical})
		require.NoError(t, err)

		err = uc.ProcessMessage(context.Background(), ws.ProcessMessageInput{
			Channel: ws.AlertChannel("H1", "critical"),
			Payload: payload,
		})
		require.NoError(t, err)

		var out struct {
			Type      ws.MessageType `json:"type"`
			Timestamp time.Time      `json:"timestamp"`
			Payload   model.Alert    `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(<-h1.send, &out))
		assert.Equal(t, ws.MessageTypeAlert, out.Type)
		assert.True(t, now.Equal(out.Timestamp))
		assert.Equal(t, "H1", out.Payload.HospitalID)
		assert.False(t, received(h2))
	})

	t.Run("bad payload", func(t *testing.T) {
		err := uc.ProcessMessage(context.Background(), ws.ProcessMessageInput{
			Channel: ws.AlertChannel("H1", "high"),
			Payload: []byte("not json"),
		})
		assert.ErrorIs(t, err, ws.ErrInvalidMessage)
	})

	t.Run("unknown channel is dropped", func(t *testing.T) {
		err := uc.ProcessMessage(context.Background(), ws.ProcessMessageInput{Channel: "project:1", Payload: []byte("{}")})
		assert.NoError(t, err)
		assert.False(t, received(h1))
	})

	t.Run("system broadcast", func(t *testing.T) {
		err := uc.ProcessMessage(context.Background(), ws.ProcessMessageInput{
			Channel: "system:maintenance",
			Payload: []byte(`{"system_event":"maintenance","message":"restart at 02:00"}`),
		})
		require.NoError(t, err)
		assert.Contains(t, string(<-h1.send), "restart at 02:00")
		assert.Contains(t, string(<-h2.send), "SYSTEM")
	})
}

func TestRegister_Rejects(t *testing.T) {
	uc := New(&testLogger{}, ws.Config{MaxConnections: 1})

	err := uc.Register(context.Background(), ws.ConnectionInput{Scope: model.Scope{UserID: "u1"}})
	assert.ErrorIs(t, err, ws.ErrInvalidMessage)
}
