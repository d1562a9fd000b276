package employee

import "context"

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUsername is used by login; it returns inactive employees too so
	// the auth service can reject them with a precise error.
	GetByUsername(ctx context.Context, username string) (Employee, error)

	// Update replaces all mutable fields, including the compensation policy,
	// wholesale. No policy history is retained.
	Update(ctx context.Context, emp Employee) error

	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)

	SetActive(ctx context.Context, id string, active bool) error

	// Delete removes the row permanently. Callers must check dependent
	// attendance records first; the repository does not guard.
	Delete(ctx context.Context, id string) error

	// CountAttendance returns the number of attendance records owned by the
	// employee, used by the deletion guard.
	CountAttendance(ctx context.Context, id string) (int64, error)
}
