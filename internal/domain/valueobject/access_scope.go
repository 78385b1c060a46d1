// Package valueobject defines immutable domain value types.
package valueobject

import (
	"github.com/google/uuid"
)

// AccessScope describes what a resolved actor may do and see. It is computed
// once per request from the actor's role and root flag, so the rest of the
// system never compares role names directly.
type AccessScope struct {
	ActorID  uuid.UUID
	Username string

	// CanManageUsers is true only for the root operator.
	CanManageUsers bool

	// CanWrite covers create/update/delete on buildings, categories and expenses.
	CanWrite bool

	// CanRead is true for every authenticated actor.
	CanRead bool

	// FullLedger is true when the actor sees the entire expense ledger.
	// Otherwise list and statistics views are restricted to rows the actor
	// created. Building and category data is never row-scoped.
	FullLedger bool
}

// LedgerOwner returns the owner id the expense ledger must be filtered by,
// or nil when the scope covers the full ledger.
func (s AccessScope) LedgerOwner() *uuid.UUID {
	if s.FullLedger {
		return nil
	}
	owner := s.ActorID
	return &owner
}
