package location

import "context"

// LocationRepository defines data access for locations.
type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)

	GetByID(ctx context.Context, id string) (Location, error)

	Update(ctx context.Context, loc Location) error

	// List returns locations ordered by name. With activeOnly set, inactive
	// locations are filtered out.
	List(ctx context.Context, activeOnly bool) ([]Location, error)

	SetActive(ctx context.Context, id string, active bool) error

	// DependentCounts tallies employees, expenses and attendance records
	// (via dependent employees) still referencing the location.
	DependentCounts(ctx context.Context, id string) (DependentCounts, error)

	// Delete removes the row permanently. Callers must verify
	// DependentCounts is all-zero first.
	Delete(ctx context.Context, id string) error
}
