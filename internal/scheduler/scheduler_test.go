package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/forecast"
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

type fakeUseCase struct {
	forecast.UseCase

	mu       sync.Mutex
	inputs   []forecast.RunInput
	inFlight int32
	peak     int32
	delay    time.Duration
	fail     map[string]bool
	levels   map[string]model.RiskLevel
}

func (f *fakeUseCase) Run(ctx context.Context, input forecast.RunInput) (model.Decision, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		p := atomic.LoadInt32(&f.peak)
		if n <= p || atomic.CompareAndSwapInt32(&f.peak, p, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.mu.Unlock()

	key := input.Facility.String()
	if f.fail[key] {
		return model.Decision{}, errors.New("history unavailable")
	}
	level := model.RiskLow
	if l, ok := f.levels[key]; ok {
		level = l
	}
	return model.Decision{Facility: input.Facility, Risk: model.RiskAssessment{Level: level}}, nil
}

func facilities(keys ...string) []model.Facility {
	res, _ := ParseScopes(keys)
	return res
}

func TestParseScopes(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []model.Facility
		wantErr bool
	}{
		{
			name: "trims and dedupes",
			raw:  []string{" H1:ED", "H1:ICU ", "", "H1:ED"},
			want: []model.Facility{{HospitalID: "H1", DepartmentID: "ED"}, {HospitalID: "H1", DepartmentID: "ICU"}},
		},
		{name: "missing department", raw: []string{"H1:"}, wantErr: true},
		{name: "no separator", raw: []string{"H1"}, wantErr: true},
		{name: "empty", raw: nil, want: []model.Facility{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScopes(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(&testLogger{}, &fakeUseCase{}, Config{})
	assert.ErrorIs(t, err, ErrNoScopes)

	s, err := New(&testLogger{}, &fakeUseCase{}, Config{Scopes: facilities("H1:ED")})
	require.NoError(t, err)
	cfg := s.(*implScheduler).cfg
	assert.Equal(t, defaultInterval, cfg.Interval)
	assert.Equal(t, defaultConcurrency, cfg.Concurrency)
	assert.Equal(t, defaultRunTimeout, cfg.RunTimeout)
}

func TestRunOnce(t *testing.T) {
	uc := &fakeUseCase{
		delay:  10 * time.Millisecond,
		fail:   map[string]bool{"H2:ED": true},
		levels: map[string]model.RiskLevel{"H1:ICU": model.RiskCritical, "H3:ED": model.RiskHigh},
	}
	s, err := New(&testLogger{}, uc, Config{
		Concurrency: 2,
		Horizon:     5,
		Scopes:      facilities("H1:ED", "H1:ICU", "H2:ED", "H3:ED", "H3:ICU"),
	})
	require.NoError(t, err)

	sum := s.RunOnce(context.Background())

	assert.Equal(t, Summary{Total: 5, Succeeded: 4, Failed: 1, Elevated: 2}, sum)
	assert.Len(t, uc.inputs, 5)
	for _, in := range uc.inputs {
		assert.Equal(t, 5, in.Horizon)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&uc.peak), int32(2))
}

func TestStart_StopsOnCancel(t *testing.T) {
	uc := &fakeUseCase{}
	s, err := New(&testLogger{}, uc, Config{Interval: time.Hour, Scopes: facilities("H1:ED")})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		return len(uc.inputs) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
