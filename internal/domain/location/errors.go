package location

import (
	"errors"
	"fmt"
)

var (
	ErrLocationNotFound        = errors.New("location not found")
	ErrLocationNameExists      = errors.New("location name already exists")
	ErrLocationAlreadyActive   = errors.New("location is already active")
	ErrLocationAlreadyInactive = errors.New("location is already inactive")
)

// DeleteBlockedError reports why a permanent delete was refused, with the
// blocking counts per category.
type DeleteBlockedError struct {
	Counts DependentCounts
}

func (e *DeleteBlockedError) Error() string {
	return fmt.Sprintf(
		"location has dependent records: %d employees, %d expenses, %d attendance records",
		e.Counts.Employees, e.Counts.Expenses, e.Counts.Attendance,
	)
}
