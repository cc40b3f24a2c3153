// Package ids generates and resolves the identifiers used for todos,
// tasks, and reminders.
//
// Identifiers are random UUIDs rather than creation timestamps so that
// rapid successive creation (bulk imports, tests) cannot collide. Prefix
// helpers let the CLI accept any unambiguous leading fragment of an ID.
package ids

import "github.com/google/uuid"

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}
