// Package notify wraps platform notification delivery.
//
// Scheduler is the contract an OS-level backend must satisfy. Orchestrator
// drives a Scheduler through the permission/channel/precision protocol and
// swallows every failure: a missed notification degrades the experience
// but never fails the operation that requested it.
package notify

import (
	"context"
	"time"
)

// Payload is the visible content of a notification.
type Payload struct {
	Title string
	Body  string
}

// Authorization is the user-controlled notification permission state.
type Authorization int

const (
	// AuthorizationNotDetermined means permission has not been requested yet.
	AuthorizationNotDetermined Authorization = iota

	// AuthorizationGranted means notifications may be delivered.
	AuthorizationGranted

	// AuthorizationDenied means the user declined the permission prompt.
	AuthorizationDenied

	// AuthorizationBlocked means notifications are disabled system-wide
	// for the application.
	AuthorizationBlocked
)

// String returns a human-readable authorization state.
func (a Authorization) String() string {
	switch a {
	case AuthorizationGranted:
		return "granted"
	case AuthorizationDenied:
		return "denied"
	case AuthorizationBlocked:
		return "blocked"
	default:
		return "not-determined"
	}
}

// Precision selects the delivery timing guarantee for a scheduled
// notification.
type Precision int

const (
	// PrecisionExact requests delivery at the exact timestamp. Some
	// platforms gate this behind an elevated permission.
	PrecisionExact Precision = iota

	// PrecisionInexact allows the platform to batch or defer delivery.
	PrecisionInexact
)

// String returns a human-readable precision mode.
func (p Precision) String() string {
	if p == PrecisionInexact {
		return "inexact"
	}
	return "exact"
}

// Channel describes the named delivery category some platforms require
// before notifications can be shown. Creation is idempotent.
type Channel struct {
	ID         string
	Name       string
	HighImport bool
}

// Scheduler is the OS-level notification capability.
type Scheduler interface {
	// RequestPermission asks the user for notification permission.
	// Safe to call repeatedly.
	RequestPermission(ctx context.Context) error

	// AuthorizationState reports the current permission state.
	AuthorizationState(ctx context.Context) (Authorization, error)

	// EnsureChannel creates the delivery channel if it doesn't exist.
	EnsureChannel(ctx context.Context, ch Channel) error

	// ScheduleAt registers a notification to fire at the absolute time at.
	// id is the external identifier later passed to Cancel.
	ScheduleAt(ctx context.Context, id string, payload Payload, at time.Time, precision Precision) error

	// Cancel removes a previously scheduled notification. Cancelling an
	// unknown id is a backend-defined no-op or error; callers treat both
	// the same.
	Cancel(ctx context.Context, id string) error

	// DisplayNow immediately shows a notification.
	DisplayNow(ctx context.Context, payload Payload) error
}

// ExactAlarmChecker is optionally implemented by schedulers on platforms
// that gate exact-time delivery behind a runtime permission.
type ExactAlarmChecker interface {
	ExactAlarmAllowed(ctx context.Context) (bool, error)
}
