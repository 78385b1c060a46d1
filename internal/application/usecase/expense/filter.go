// Package expense contains expense ledger use cases.
package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// FilterParams are the raw optional filter keys accepted by the list endpoint
// and by every report endpoint: building, category, inclusive date range and
// owner. The same construction path serves browse and report views so their
// filter semantics cannot diverge.
type FilterParams struct {
	BuildingID   *uuid.UUID
	CategoryID   *uuid.UUID
	CategorySlug *string
	DateFrom     *time.Time
	DateTo       *time.Time
	CreatedBy    *uuid.UUID
}

// BuildFilter combines the caller's resolved scope with the optional filter
// keys into the predicate applied to the expense ledger.
//
// The owner key is honored only for the root operator; for everyone else it
// is silently ignored and replaced by the caller's own scope, which already
// pins the ledger view to rows the caller created.
func BuildFilter(scope valueobject.AccessScope, params FilterParams) adapter.ExpenseFilter {
	filter := adapter.ExpenseFilter{
		BuildingID:   params.BuildingID,
		CategoryID:   params.CategoryID,
		CategorySlug: params.CategorySlug,
		DateFrom:     params.DateFrom,
		DateTo:       params.DateTo,
	}

	if scope.FullLedger {
		filter.CreatedBy = params.CreatedBy
	} else {
		filter.CreatedBy = scope.LedgerOwner()
	}

	return filter
}

// scopeCoversRow reports whether the scope may touch a ledger row created by
// the given owner. Rows whose creator was removed stay visible only to the
// full-ledger scope.
func scopeCoversRow(scope valueobject.AccessScope, createdBy *uuid.UUID) bool {
	owner := scope.LedgerOwner()
	if owner == nil {
		return true
	}
	return createdBy != nil && *createdBy == *owner
}
