package attendance

import (
	"context"

	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
)

// LedgerRepository defines data access for the attendance ledger.
type LedgerRepository interface {
	// Upsert inserts the record or, when a row for the same
	// (employee_id, date) natural key already exists, overwrites its mutable
	// fields. The conflict is resolved by the storage engine in a single
	// atomic statement; last write wins.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// ListWindow returns all records intersecting the scoped window, joined
	// with employee name/role/location, ordered date descending then
	// employee name ascending.
	ListWindow(ctx context.Context, sc scope.Scope) ([]Record, error)

	// CountByLocation counts attendance records owned by employees of a
	// location, used by the location deletion guard.
	CountByLocation(ctx context.Context, locationID string) (int64, error)
}
