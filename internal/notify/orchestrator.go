package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultChannel matches the channel the mobile releases registered, so
// upgraded installs keep their notification settings.
var DefaultChannel = Channel{
	ID:         "reminders",
	Name:       "Reminders",
	HighImport: true,
}

// Options configures an Orchestrator.
type Options struct {
	// Channel is the delivery channel ensured before every request.
	// Zero value means DefaultChannel.
	Channel Channel

	// Advise, when set, receives a one-line advisory when notifications
	// are denied or blocked. The request still proceeds.
	Advise func(message string)

	// Logger receives swallowed failures. Nil means the default logger.
	Logger *log.Logger
}

// Orchestrator drives a Scheduler through the scheduling protocol:
// request permission, check authorization, ensure the channel, pick a
// precision, submit. Every error along the way is logged and swallowed;
// callers observe success regardless of whether delivery was arranged.
type Orchestrator struct {
	scheduler Scheduler
	channel   Channel
	advise    func(string)
	log       *log.Logger
}

// NewOrchestrator wraps scheduler with the scheduling protocol.
func NewOrchestrator(scheduler Scheduler, opts Options) *Orchestrator {
	channel := opts.Channel
	if channel == (Channel{}) {
		channel = DefaultChannel
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		scheduler: scheduler,
		channel:   channel,
		advise:    opts.Advise,
		log:       logger,
	}
}

// Schedule arranges delivery of payload at the absolute time at, keyed by
// id for later cancellation.
func (o *Orchestrator) Schedule(ctx context.Context, id string, payload Payload, at time.Time) {
	if err := o.schedule(ctx, id, payload, at); err != nil {
		o.log.Error("schedule notification", "id", id, "at", at, "err", err)
	}
}

// Display immediately shows payload.
func (o *Orchestrator) Display(ctx context.Context, payload Payload) {
	if err := o.display(ctx, payload); err != nil {
		o.log.Error("display notification", "title", payload.Title, "err", err)
	}
}

// Cancel removes the scheduled notification with id. The id may
// legitimately be unknown to the backend (already fired, or scheduling
// failed earlier), so failures are logged at debug and swallowed.
func (o *Orchestrator) Cancel(ctx context.Context, id string) {
	if err := o.scheduler.Cancel(ctx, id); err != nil {
		o.log.Debug("cancel notification", "id", id, "err", err)
	}
}

func (o *Orchestrator) schedule(ctx context.Context, id string, payload Payload, at time.Time) error {
	if err := o.prepare(ctx); err != nil {
		return err
	}

	precision := o.pickPrecision(ctx)
	if err := o.scheduler.ScheduleAt(ctx, id, payload, at, precision); err != nil {
		return fmt.Errorf("schedule at %s: %w", at.Format(time.RFC3339), err)
	}
	return nil
}

func (o *Orchestrator) display(ctx context.Context, payload Payload) error {
	if err := o.prepare(ctx); err != nil {
		return err
	}

	if err := o.scheduler.DisplayNow(ctx, payload); err != nil {
		return fmt.Errorf("display now: %w", err)
	}
	return nil
}

// prepare runs the permission and channel steps shared by scheduling and
// immediate display.
func (o *Orchestrator) prepare(ctx context.Context) error {
	if err := o.scheduler.RequestPermission(ctx); err != nil {
		return fmt.Errorf("request permission: %w", err)
	}

	state, err := o.scheduler.AuthorizationState(ctx)
	if err != nil {
		return fmt.Errorf("authorization state: %w", err)
	}
	if state == AuthorizationDenied || state == AuthorizationBlocked {
		// Advisory only. The backend call still goes out; the platform
		// side is expected to no-op or fail quietly.
		if o.advise != nil {
			o.advise(fmt.Sprintf("notifications are %s for this app; enable them in system settings to receive reminders", state))
		}
		o.log.Warn("notifications not authorized", "state", state.String())
	}

	if err := o.scheduler.EnsureChannel(ctx, o.channel); err != nil {
		return fmt.Errorf("ensure channel %q: %w", o.channel.ID, err)
	}
	return nil
}

// pickPrecision prefers exact delivery, falling back to inexact when the
// backend exposes an exact-alarm capability check that reports not
// granted. Backends without the check get an exact request and may
// downgrade it themselves.
func (o *Orchestrator) pickPrecision(ctx context.Context) Precision {
	checker, ok := o.scheduler.(ExactAlarmChecker)
	if !ok {
		return PrecisionExact
	}

	allowed, err := checker.ExactAlarmAllowed(ctx)
	if err != nil {
		o.log.Debug("exact alarm check", "err", err)
		return PrecisionInexact
	}
	if !allowed {
		return PrecisionInexact
	}
	return PrecisionExact
}
