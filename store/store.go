package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agendadev/agenda/internal/kv"
	"github.com/agendadev/agenda/internal/notify"
)

const (
	// TodosKey is the persistence key for the todo collection.
	TodosKey = "todos"

	// RemindersKey is the persistence key for the reminder collection.
	RemindersKey = "reminders"
)

// Notifier receives the notification side effects of reminder mutations.
// Implementations swallow their own failures; no call here may block a
// mutation on delivery problems.
type Notifier interface {
	// Schedule arranges delivery of payload at the absolute time at,
	// keyed by id for later cancellation.
	Schedule(ctx context.Context, id string, payload notify.Payload, at time.Time)

	// Cancel removes a previously scheduled notification.
	Cancel(ctx context.Context, id string)

	// Display immediately shows payload.
	Display(ctx context.Context, payload notify.Payload)
}

// nopNotifier drops every notification request.
type nopNotifier struct{}

func (nopNotifier) Schedule(ctx context.Context, id string, payload notify.Payload, at time.Time) {
}

func (nopNotifier) Cancel(ctx context.Context, id string) {}

func (nopNotifier) Display(ctx context.Context, payload notify.Payload) {}

// Options configures a Store.
type Options struct {
	// Logger receives swallowed persistence failures. Nil means the
	// default logger.
	Logger *log.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Store holds the authoritative in-memory todo and reminder collections.
// Obtain one with New and share the handle explicitly; there is no
// package-level instance.
type Store struct {
	kv       kv.Store
	notifier Notifier
	log      *log.Logger
	now      func() time.Time

	mu        sync.Mutex
	todos     []Todo
	reminders []Reminder

	// wg tracks in-flight fire-and-forget side effects so Flush and
	// tests can wait for them. It does not order them.
	wg sync.WaitGroup
}

// New creates a Store persisting through storage and notifying through
// notifier. A nil notifier disables notification side effects.
func New(storage kv.Store, notifier Notifier, opts Options) *Store {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:       storage,
		notifier: notifier,
		log:      logger,
		now:      now,
	}
}

// Load reads both persisted collections and replaces in-memory state with
// whatever is present. Absent keys leave the corresponding collection
// empty. Until Load completes, readers see empty state.
func (s *Store) Load(ctx context.Context) error {
	todos, err := loadCollection[Todo](ctx, s.kv, TodosKey)
	if err != nil {
		return err
	}

	reminders, err := loadCollection[Reminder](ctx, s.kv, RemindersKey)
	if err != nil {
		return err
	}
	// Hold the sort invariant even if the stored blob was edited by hand.
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Timestamp < reminders[j].Timestamp
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if todos != nil {
		s.todos = todos
	}
	if reminders != nil {
		s.reminders = reminders
	}
	return nil
}

func loadCollection[T any](ctx context.Context, storage kv.Store, key string) ([]T, error) {
	data, ok, err := storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	return items, nil
}

// Todos returns a snapshot of the todo collection in insertion order.
func (s *Store) Todos() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTodos(s.todos)
}

// Reminders returns a snapshot of the reminder collection, sorted
// ascending by timestamp.
func (s *Store) Reminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneReminders(s.reminders)
}

// Flush waits for all in-flight persistence and notification side
// effects. Mutations never wait on side effects themselves; call this
// before process exit or in tests.
func (s *Store) Flush() {
	s.wg.Wait()
}

// dispatch runs fn in the background, tracked for Flush. Side effects
// carry no deadline and are never cancelled once issued.
func (s *Store) dispatch(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// persistTodos writes the given snapshot of the todo collection. Last
// write wins; a failure leaves stale data on disk until the next
// successful write.
func (s *Store) persistTodos(snapshot []Todo) {
	s.dispatch(func() {
		s.persist(TodosKey, snapshot)
	})
}

// persistReminders writes the given snapshot of the reminder collection.
func (s *Store) persistReminders(snapshot []Reminder) {
	s.dispatch(func() {
		s.persist(RemindersKey, snapshot)
	})
}

func (s *Store) persist(key string, collection any) {
	data, err := json.Marshal(collection)
	if err != nil {
		s.log.Error("marshal collection", "key", key, "err", err)
		return
	}
	if err := s.kv.Set(context.Background(), key, data); err != nil {
		s.log.Error("persist collection", "key", key, "err", err)
	}
}
