package notify

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultCommand is the notifier binary used when none is configured.
const DefaultCommand = "notify-send"

// Desktop delivers notifications through an external notifier command and
// keeps scheduled deliveries as in-process timers. Timers only survive as
// long as the process; the store's fallback watcher covers reminders whose
// scheduled delivery was lost.
type Desktop struct {
	command string
	log     *log.Logger

	mu      sync.Mutex
	channel Channel
	timers  map[string]*time.Timer
}

// NewDesktop creates a Desktop scheduler delivering via command. An empty
// command selects DefaultCommand.
func NewDesktop(command string, logger *log.Logger) *Desktop {
	if command == "" {
		command = DefaultCommand
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Desktop{
		command: command,
		log:     logger,
		timers:  make(map[string]*time.Timer),
	}
}

// RequestPermission is a no-op: desktop notifiers have no runtime
// permission prompt.
func (d *Desktop) RequestPermission(ctx context.Context) error {
	return nil
}

// AuthorizationState reports granted when the notifier command is on PATH
// and blocked otherwise.
func (d *Desktop) AuthorizationState(ctx context.Context) (Authorization, error) {
	if _, err := exec.LookPath(d.command); err != nil {
		return AuthorizationBlocked, nil
	}
	return AuthorizationGranted, nil
}

// EnsureChannel records the channel descriptor used for urgency mapping.
func (d *Desktop) EnsureChannel(ctx context.Context, ch Channel) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channel = ch
	return nil
}

// ScheduleAt arms a timer that displays payload at the given time. A
// second schedule for the same id replaces the first.
func (d *Desktop) ScheduleAt(ctx context.Context, id string, payload Payload, at time.Time, precision Precision) error {
	delay := time.Until(at)
	if delay < 0 {
		return fmt.Errorf("refusing to schedule %q in the past", id)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.timers[id]; ok {
		existing.Stop()
	}
	d.timers[id] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, id)
		d.mu.Unlock()

		if err := d.send(payload); err != nil {
			d.log.Error("deliver scheduled notification", "id", id, "err", err)
		}
	})
	return nil
}

// Cancel disarms the timer for id. Unknown ids report an error, which the
// orchestrator swallows.
func (d *Desktop) Cancel(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	timer, ok := d.timers[id]
	if !ok {
		return fmt.Errorf("no scheduled notification %q", id)
	}
	timer.Stop()
	delete(d.timers, id)
	return nil
}

// DisplayNow shows payload immediately.
func (d *Desktop) DisplayNow(ctx context.Context, payload Payload) error {
	return d.send(payload)
}

// Pending returns how many timers are currently armed.
func (d *Desktop) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

func (d *Desktop) send(payload Payload) error {
	d.mu.Lock()
	channel := d.channel
	d.mu.Unlock()

	args := []string{"-a", "agenda"}
	if channel.HighImport {
		args = append(args, "-u", "critical")
	}
	args = append(args, payload.Title)
	if payload.Body != "" {
		args = append(args, payload.Body)
	}

	output, err := exec.Command(d.command, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", d.command, err, output)
	}
	return nil
}
