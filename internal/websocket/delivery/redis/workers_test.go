package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pulse-srv/internal/websocket"
)

type testLogger struct{ warns int }

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warns++ }
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

type fakeUseCase struct {
	websocket.UseCase
	got []websocket.ProcessMessageInput
	err error
}

func (f *fakeUseCase) ProcessMessage(ctx context.Context, input websocket.ProcessMessageInput) error {
	f.got = append(f.got, input)
	return f.err
}

func TestHandleMessage(t *testing.T) {
	tests := []struct {
		name      string
		ucErr     error
		wantWarns int
	}{
		{name: "forwarded"},
		{name: "use case error is logged", ucErr: errors.New("bad payload"), wantWarns: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			l := &testLogger{}
			s := &subscriber{uc: uc, logger: l, quit: make(chan struct{})}

			s.handleMessage(context.Background(), "alert:H1:high", `{"id":"a1"}`)

			assert.Equal(t, []websocket.ProcessMessageInput{{Channel: "alert:H1:high", Payload: []byte(`{"id":"a1"}`)}}, uc.got)
			assert.Equal(t, tt.wantWarns, l.warns)
		})
	}
}
