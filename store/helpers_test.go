package store

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agendadev/agenda/internal/kv"
	"github.com/agendadev/agenda/internal/notify"
)

// notifierCall records one call into the fake notifier.
type notifierCall struct {
	kind    string // "schedule", "cancel", "display"
	id      string
	payload notify.Payload
	at      time.Time
}

// fakeNotifier records notification side effects for assertions.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifierCall
}

func (f *fakeNotifier) Schedule(ctx context.Context, id string, payload notify.Payload, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifierCall{kind: "schedule", id: id, payload: payload, at: at})
}

func (f *fakeNotifier) Cancel(ctx context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifierCall{kind: "cancel", id: id})
}

func (f *fakeNotifier) Display(ctx context.Context, payload notify.Payload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifierCall{kind: "display", payload: payload})
}

func (f *fakeNotifier) callsOf(kind string) []notifierCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []notifierCall
	for _, call := range f.calls {
		if call.kind == kind {
			matched = append(matched, call)
		}
	}
	return matched
}

// testNow is the fixed clock used by test stores unless overridden.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *kv.Memory, *fakeNotifier) {
	t.Helper()
	return newTestStoreAt(t, testNow)
}

func newTestStoreAt(t *testing.T, now time.Time) (*Store, *kv.Memory, *fakeNotifier) {
	t.Helper()

	storage := kv.NewMemory()
	notifier := &fakeNotifier{}
	s := New(storage, notifier, Options{
		Logger: log.New(io.Discard),
		Now:    func() time.Time { return now },
	})
	return s, storage, notifier
}
