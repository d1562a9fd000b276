package attendance

import "time"

// Status of a single (employee, date) ledger cell.
type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusFileClose Status = "file_close"
	StatusHoliday   Status = "holiday"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusFileClose, StatusHoliday:
		return true
	}
	return false
}

// Record is one ledger row. At most one record exists per (employee, date);
// the repository enforces this with an atomic upsert on the natural key.
// OutputCount is meaningful only when Status is present. A present record
// with no output stored carries nil, which aggregation treats as zero.
type Record struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      Status
	OutputCount *int
	Note        *string
	RecordedBy  string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeRole *string
	LocationID   *string
}
