package report

import (
	"context"

	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
)

// ReportService exposes the rollup engine and the revenue/profit calculator.
// Every method clamps the requested scope to the caller's visibility before
// any storage access.
type ReportService interface {
	// Rollup aggregates ledger rows over the clamped scope.
	Rollup(ctx context.Context, requested scope.Scope) (RollupResult, error)

	// MonthlyGrid produces the per-day matrix for a calendar month.
	MonthlyGrid(ctx context.Context, locationID *string, year, month int) (MonthlyGrid, error)

	// LocationSummary folds the location's client rate and expenses on top
	// of the rollup.
	LocationSummary(ctx context.Context, locationID string, window scope.Window) (LocationSummary, error)

	// FleetSummary produces one summary per active location plus grand
	// totals.
	FleetSummary(ctx context.Context, window scope.Window, locationID *string) (FleetSummary, error)

	// EmployeeStats is the caller's personal today/this-month/all-time
	// rollup.
	EmployeeStats(ctx context.Context) (EmployeeStats, error)
}
