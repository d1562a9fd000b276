package report

import (
	"testing"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridShape(t *testing.T) {
	emps := []employee.Employee{
		{ID: "m", FullName: "Mona", Role: "location_manager", PayType: employee.PayTypeFixedMonthly, MonthlySalary: decPtr(t, "6000")},
		{ID: "a", FullName: "Alice", Role: "operator", PayType: employee.PayTypePieceRate},
	}
	rate := decimal.RequireFromString("0.10")

	rows := []attendance.Record{
		record("a", "Alice", time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, intPtr(120)),
		record("a", "Alice", time.Date(2026, time.June, 4, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent, nil),
		record("m", "Mona", time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, nil),
	}

	grid := buildGrid(2026, time.June, emps, rows, rate)

	assert.Equal(t, 2026, grid.Year)
	assert.Equal(t, 6, grid.Month)
	assert.Equal(t, 30, grid.Days)
	// June 2026 Sundays: 7, 14, 21, 28
	assert.Equal(t, []int{7, 14, 21, 28}, grid.Sundays)

	require.Len(t, grid.Rows, 2)
	// Row order follows the input employee order (role then name).
	assert.Equal(t, "Mona", grid.Rows[0].Name)
	assert.Equal(t, "Alice", grid.Rows[1].Name)

	alice := grid.Rows[1]
	require.Len(t, alice.Cells, 30)
	require.NotNil(t, alice.Cells[2])
	assert.Equal(t, attendance.StatusPresent, alice.Cells[2].Status)
	require.NotNil(t, alice.Cells[2].Output)
	assert.Equal(t, 120, *alice.Cells[2].Output)
	require.NotNil(t, alice.Cells[3])
	assert.Equal(t, attendance.StatusAbsent, alice.Cells[3].Status)
	assert.Nil(t, alice.Cells[3].Output)
	assert.Nil(t, alice.Cells[4], "no record means nil cell")

	assert.Equal(t, int64(120), alice.TotalOutput)
	assert.True(t, alice.TotalEarnings.Equal(decimal.RequireFromString("12")))

	mona := grid.Rows[0]
	assert.Equal(t, int64(0), mona.TotalOutput)
	assert.True(t, mona.TotalEarnings.Equal(decimal.RequireFromString("200")), "6000/30 for one present day")

	assert.Equal(t, int64(120), grid.Footer.TotalOutput)
	assert.True(t, grid.Footer.TotalEarnings.Equal(decimal.RequireFromString("212")))
}

func TestBuildGridIgnoresOutOfScopeRows(t *testing.T) {
	emps := []employee.Employee{
		{ID: "a", FullName: "Alice", Role: "operator", PayType: employee.PayTypePieceRate},
	}

	rows := []attendance.Record{
		// Different month and an employee outside the grid.
		record("a", "Alice", time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, intPtr(50)),
		record("ghost", "Ghost", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, intPtr(50)),
	}

	grid := buildGrid(2026, time.June, emps, rows, decimal.RequireFromString("0.10"))

	require.Len(t, grid.Rows, 1)
	assert.Equal(t, int64(0), grid.Rows[0].TotalOutput)
	for _, cell := range grid.Rows[0].Cells {
		assert.Nil(t, cell)
	}
	assert.Equal(t, int64(0), grid.Footer.TotalOutput)
}

func TestBuildGridSundayPaysLikeAnyDay(t *testing.T) {
	emps := []employee.Employee{
		{ID: "a", FullName: "Alice", Role: "operator", PayType: employee.PayTypePieceRate},
	}

	// June 7, 2026 is a Sunday.
	rows := []attendance.Record{
		record("a", "Alice", time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, intPtr(100)),
	}

	grid := buildGrid(2026, time.June, emps, rows, decimal.RequireFromString("0.10"))

	assert.Contains(t, grid.Sundays, 7)
	assert.Equal(t, int64(100), grid.Rows[0].TotalOutput)
	assert.True(t, grid.Rows[0].TotalEarnings.Equal(decimal.RequireFromString("10")))
}
