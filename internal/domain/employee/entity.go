package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayType selects the compensation policy attached to an employee.
type PayType string

const (
	// PayTypePieceRate pays per scanned document, using the employee's
	// custom rate when set and the global default scan rate otherwise.
	PayTypePieceRate PayType = "piece_rate"
	// PayTypeFixedMonthly pays a fixed monthly amount prorated by the
	// calendar days of each record's month.
	PayTypeFixedMonthly PayType = "fixed_monthly"
)

func (p PayType) Valid() bool {
	return p == PayTypePieceRate || p == PayTypeFixedMonthly
}

type Employee struct {
	ID            string
	FullName      string
	Username      string
	PasswordHash  string
	LocationID    *string
	Role          string
	PayType       PayType
	CustomRate    *decimal.Decimal
	MonthlySalary *decimal.Decimal
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	LocationName *string
}
