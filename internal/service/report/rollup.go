package report

import (
	"sort"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/report"
	"github.com/Harshalp4/scantrack-pro/internal/service/compensation"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// accumulate folds ledger rows into totals. The accumulation is commutative
// addition keyed by employee and date, and the breakdowns are sorted before
// returning, so the result is identical for any iteration order of rows.
//
// Rows with a non-present status contribute zero output and zero earnings
// but still bump the "recorded" counters, so callers can tell an absence
// apart from a day with no data entered.
func accumulate(rows []attendance.Record, employees map[string]employee.Employee, defaultRate decimal.Decimal) report.RollupResult {
	result := report.RollupResult{
		TotalEarnings: decimal.Zero,
		PerEmployee:   []report.EmployeeTotal{},
		PerDate:       []report.DateTotal{},
	}

	byEmployee := make(map[string]*report.EmployeeTotal)
	byDate := make(map[string]*report.DateTotal)

	for _, row := range rows {
		emp, known := employees[row.EmployeeID]
		present := row.Status == attendance.StatusPresent

		output := int64(0)
		if present && row.OutputCount != nil {
			output = int64(*row.OutputCount)
		}

		earnings := decimal.Zero
		if known {
			earnings = compensation.Contribution(emp, row.Date, row.OutputCount, present, defaultRate)
		}

		et, ok := byEmployee[row.EmployeeID]
		if !ok {
			et = &report.EmployeeTotal{EmployeeID: row.EmployeeID, Earnings: decimal.Zero}
			if row.EmployeeName != nil {
				et.Name = *row.EmployeeName
			}
			if row.EmployeeRole != nil {
				et.Role = *row.EmployeeRole
			}
			byEmployee[row.EmployeeID] = et
		}
		et.Output += output
		et.Earnings = et.Earnings.Add(earnings)
		et.DaysRecorded++
		if present {
			et.DaysPresent++
		}

		day := row.Date.Format(dateLayout)
		dt, ok := byDate[day]
		if !ok {
			dt = &report.DateTotal{Date: day, Earnings: decimal.Zero}
			byDate[day] = dt
		}
		dt.Output += output
		dt.Earnings = dt.Earnings.Add(earnings)
		dt.Recorded++
		if present {
			dt.Present++
		}

		result.TotalOutput += output
		result.TotalEarnings = result.TotalEarnings.Add(earnings)
	}

	for _, et := range byEmployee {
		result.PerEmployee = append(result.PerEmployee, *et)
	}
	sort.Slice(result.PerEmployee, func(i, j int) bool {
		a, b := result.PerEmployee[i], result.PerEmployee[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.EmployeeID < b.EmployeeID
	})

	for _, dt := range byDate {
		result.PerDate = append(result.PerDate, *dt)
	}
	sort.Slice(result.PerDate, func(i, j int) bool {
		return result.PerDate[i].Date < result.PerDate[j].Date
	})

	return result
}

// employeeIndex builds a lookup of employees by ID.
func employeeIndex(list []employee.Employee) map[string]employee.Employee {
	index := make(map[string]employee.Employee, len(list))
	for _, emp := range list {
		index[emp.ID] = emp
	}
	return index
}
