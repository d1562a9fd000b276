package report

import (
	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// RollupResult aggregates ledger rows over a scoped window: total output and
// earnings plus per-employee and per-date breakdowns. For a fixed record set
// the result is deterministic regardless of iteration order.
type RollupResult struct {
	TotalOutput   int64           `json:"total_output"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	PerEmployee   []EmployeeTotal `json:"per_employee"`
	PerDate       []DateTotal     `json:"per_date"`
}

type EmployeeTotal struct {
	EmployeeID   string          `json:"employee_id"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Output       int64           `json:"output"`
	Earnings     decimal.Decimal `json:"earnings"`
	DaysPresent  int             `json:"days_present"`
	DaysRecorded int             `json:"days_recorded"`
}

// DateTotal carries the day's totals plus how many cells were recorded at
// all, so a UI can tell "absent" from "no data entered".
type DateTotal struct {
	Date     string          `json:"date"`
	Output   int64           `json:"output"`
	Earnings decimal.Decimal `json:"earnings"`
	Recorded int             `json:"recorded"`
	Present  int             `json:"present"`
}

// LocationSummary is the financial rollup of one location over a window.
// Profit may be negative; nothing is clamped.
type LocationSummary struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	TotalOutput  int64           `json:"total_output"`
	EmployeeCost decimal.Decimal `json:"employee_cost"`
	Expenses     decimal.Decimal `json:"expenses"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// FleetSummary covers every active location in scope. Locations without any
// activity still appear with all-zero figures.
type FleetSummary struct {
	Locations []LocationSummary `json:"locations"`
	Totals    FleetTotals       `json:"totals"`
}

type FleetTotals struct {
	TotalOutput  int64           `json:"total_output"`
	EmployeeCost decimal.Decimal `json:"employee_cost"`
	Expenses     decimal.Decimal `json:"expenses"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// MonthlyGrid is one row per active employee (grouped by role) and one
// column per calendar day. Nil cells mean no record was entered for that
// day. Sundays are flagged for rendering only; a present record on a Sunday
// counts like any other day.
type MonthlyGrid struct {
	Year    int        `json:"year"`
	Month   int        `json:"month"`
	Days    int        `json:"days"`
	Sundays []int      `json:"sundays"`
	Rows    []GridRow  `json:"rows"`
	Footer  GridFooter `json:"footer"`
}

type GridRow struct {
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	Cells         []*GridCell     `json:"cells"`
	TotalOutput   int64           `json:"total_output"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

type GridCell struct {
	Status attendance.Status `json:"status"`
	Output *int              `json:"output,omitempty"`
}

type GridFooter struct {
	TotalOutput   int64           `json:"total_output"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

// EmployeeStats is the operator self-service rollup.
type EmployeeStats struct {
	Today     PeriodStats `json:"today"`
	ThisMonth PeriodStats `json:"this_month"`
	AllTime   PeriodStats `json:"all_time"`
}

type PeriodStats struct {
	Output      int64           `json:"output"`
	Earnings    decimal.Decimal `json:"earnings"`
	DaysPresent int             `json:"days_present"`
}
