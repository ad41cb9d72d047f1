package server

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/openhlx/hlxgo/internal/backup"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
)

// errSaveFailed is returned by failingStore's Save to simulate a storage
// write failure.
var errSaveFailed = errors.New("simulated storage failure")

// fakeConnection mirrors the dispatch package's own test double (see
// internal/dispatch/dispatcher_test.go) so controller tests can assert on
// exactly what was written to the wire.
type fakeConnection struct {
	writes [][]byte
}

func (f *fakeConnection) Write(frame []byte) error {
	f.writes = append(f.writes, frame)
	return nil
}

func (f *fakeConnection) strings() []string {
	out := make([]string, len(f.writes))
	for i, w := range f.writes {
		out[i] = string(w)
	}
	return out
}

// fakeDirtier records MarkDirty calls without needing a real backup.Store.
type fakeDirtier struct {
	marked int
}

func (f *fakeDirtier) MarkDirty() { f.marked++ }

// recordingSink captures every emitted state change in order.
type recordingSink struct {
	changes []events.StateChange
}

func (s *recordingSink) OnStateChange(change events.StateChange) {
	s.changes = append(s.changes, change)
}

// failingStore wraps a backup.Store and forces Save (and/or Load) to fail,
// for exercising the controller's error paths without a real filesystem.
type failingStore struct {
	backup.Store
	saveErr error
	loadErr error
}

func (f *failingStore) Load() (*backup.Document, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.Store.Load()
}

func (f *failingStore) Save(doc *backup.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.Store.Save(doc)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T) (*controllerContext, *fakeDirtier, *recordingSink) {
	t.Helper()
	dirty := &fakeDirtier{}
	sink := &recordingSink{}
	ctx := &controllerContext{
		state: model.DefaultState(),
		sink:  sink,
		dirty: dirty,
		log:   testLogger(),
	}
	return ctx, dirty, sink
}
