package report

import (
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/report"
	"github.com/Harshalp4/scantrack-pro/internal/service/compensation"
	"github.com/shopspring/decimal"
)

// buildGrid lays out one row per employee and one column per calendar day of
// the month. Employees arrive pre-sorted by role then name from the
// repository, which yields the role grouping. Nil cells mean no record.
//
// Sundays are flagged for rendering only: a present record on a Sunday is
// paid and counted exactly like any other day.
func buildGrid(year int, month time.Month, employees []employee.Employee, rows []attendance.Record, defaultRate decimal.Decimal) report.MonthlyGrid {
	days := compensation.DaysInMonth(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	grid := report.MonthlyGrid{
		Year:    year,
		Month:   int(month),
		Days:    days,
		Sundays: []int{},
		Rows:    make([]report.GridRow, 0, len(employees)),
		Footer:  report.GridFooter{TotalEarnings: decimal.Zero},
	}

	for day := 1; day <= days; day++ {
		if time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			grid.Sundays = append(grid.Sundays, day)
		}
	}

	cells := make(map[string][]*report.GridCell, len(employees))
	rowIndex := make(map[string]int, len(employees))
	for i, emp := range employees {
		cells[emp.ID] = make([]*report.GridCell, days)
		rowIndex[emp.ID] = i
		grid.Rows = append(grid.Rows, report.GridRow{
			EmployeeID:    emp.ID,
			Name:          emp.FullName,
			Role:          emp.Role,
			TotalEarnings: decimal.Zero,
		})
	}

	empIndex := employeeIndex(employees)
	for _, rec := range rows {
		i, ok := rowIndex[rec.EmployeeID]
		if !ok {
			continue // record of an employee outside the grid's scope
		}
		day := rec.Date.Day()
		if rec.Date.Year() != year || rec.Date.Month() != month || day < 1 || day > days {
			continue
		}

		cell := &report.GridCell{Status: rec.Status}
		present := rec.Status == attendance.StatusPresent
		if present {
			cell.Output = rec.OutputCount
		}
		cells[rec.EmployeeID][day-1] = cell

		if present && rec.OutputCount != nil {
			grid.Rows[i].TotalOutput += int64(*rec.OutputCount)
		}
		earnings := compensation.Contribution(empIndex[rec.EmployeeID], rec.Date, rec.OutputCount, present, defaultRate)
		grid.Rows[i].TotalEarnings = grid.Rows[i].TotalEarnings.Add(earnings)
	}

	for i := range grid.Rows {
		grid.Rows[i].Cells = cells[grid.Rows[i].EmployeeID]
		grid.Footer.TotalOutput += grid.Rows[i].TotalOutput
		grid.Footer.TotalEarnings = grid.Footer.TotalEarnings.Add(grid.Rows[i].TotalEarnings)
	}

	return grid
}
