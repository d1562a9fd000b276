package location

import (
	"time"

	"github.com/shopspring/decimal"
)

type Location struct {
	ID         string
	Name       string
	Address    *string
	ClientRate *decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DependentCounts holds the number of rows blocking a permanent delete,
// broken down so the caller knows what to reassign first.
type DependentCounts struct {
	Employees  int64 `json:"employees"`
	Expenses   int64 `json:"expenses"`
	Attendance int64 `json:"attendance_records"`
}

func (c DependentCounts) Zero() bool {
	return c.Employees == 0 && c.Expenses == 0 && c.Attendance == 0
}
