package subprocess

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/jmgilman/go/subprocess/spawn"
	"github.com/jmgilman/go/subprocess/spawn/mocks"
	"github.com/prashantv/gostub"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingHandler keeps every record it is handed.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]slog.Record(nil), h.records...)
}

// newMockSpawner returns a spawner that always reports outcome and err.
func newMockSpawner(outcome *spawn.Outcome, err error) *mocks.SpawnerMock {
	return &mocks.SpawnerMock{
		SpawnFunc: func(ctx context.Context, req *spawn.Request) (*spawn.Outcome, error) {
			return outcome, err
		},
	}
}

// quietDefaults returns New() with logging off and spawner installed.
func quietDefaults(spawner spawn.Spawner) *Defaults {
	d := New()
	d.LogLevel = LevelDisabled
	d.Spawner = spawner
	return d
}

// lastRequest returns the request of the most recent Spawn call.
func lastRequest(t *testing.T, mock *mocks.SpawnerMock) *spawn.Request {
	t.Helper()
	calls := mock.SpawnCalls()
	if len(calls) == 0 {
		t.Fatal("expected Spawn to be called")
	}
	return calls[len(calls)-1].Req
}

// stubEnviron makes the inherited environment exactly env for the test.
func stubEnviron(t *testing.T, env ...string) {
	t.Helper()
	stubs := gostub.StubFunc(&environ, env)
	t.Cleanup(stubs.Reset)
}

// stubGlobal gives the test its own process-wide defaults.
func stubGlobal(t *testing.T) {
	t.Helper()
	stubs := gostub.Stub(&global, newRegistry())
	t.Cleanup(stubs.Reset)
}
