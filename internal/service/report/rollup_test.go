package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func record(empID string, name string, day time.Time, status attendance.Status, output *int) attendance.Record {
	return attendance.Record{
		EmployeeID:   empID,
		EmployeeName: &name,
		Date:         day,
		Status:       status,
		OutputCount:  output,
	}
}

func intPtr(n int) *int { return &n }

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}

func TestAccumulateTotals(t *testing.T) {
	emps := employeeIndex([]employee.Employee{
		{ID: "a", FullName: "Alice", PayType: employee.PayTypePieceRate},
		{ID: "b", FullName: "Bob", PayType: employee.PayTypePieceRate, CustomRate: decPtr(t, "0.50")},
	})
	rate := decimal.RequireFromString("0.10")

	rows := []attendance.Record{
		record("a", "Alice", date(t, "2026-06-01"), attendance.StatusPresent, intPtr(100)),
		record("a", "Alice", date(t, "2026-06-02"), attendance.StatusPresent, intPtr(50)),
		record("b", "Bob", date(t, "2026-06-01"), attendance.StatusPresent, intPtr(40)),
		record("b", "Bob", date(t, "2026-06-02"), attendance.StatusAbsent, nil),
	}

	got := accumulate(rows, emps, rate)

	assert.Equal(t, int64(190), got.TotalOutput)
	// Alice 150 x 0.10 + Bob 40 x 0.50
	assert.True(t, got.TotalEarnings.Equal(decimal.RequireFromString("35")), "earnings %s", got.TotalEarnings)

	require.Len(t, got.PerEmployee, 2)
	assert.Equal(t, "Alice", got.PerEmployee[0].Name)
	assert.Equal(t, int64(150), got.PerEmployee[0].Output)
	assert.Equal(t, 2, got.PerEmployee[0].DaysPresent)
	assert.Equal(t, "Bob", got.PerEmployee[1].Name)
	assert.Equal(t, 1, got.PerEmployee[1].DaysPresent)
	assert.Equal(t, 2, got.PerEmployee[1].DaysRecorded)

	require.Len(t, got.PerDate, 2)
	assert.Equal(t, "2026-06-01", got.PerDate[0].Date)
	assert.Equal(t, int64(140), got.PerDate[0].Output)
	assert.Equal(t, 2, got.PerDate[0].Present)
	assert.Equal(t, "2026-06-02", got.PerDate[1].Date)
	assert.Equal(t, 2, got.PerDate[1].Recorded)
	assert.Equal(t, 1, got.PerDate[1].Present)
}

func TestAccumulateOrderIndependent(t *testing.T) {
	emps := employeeIndex([]employee.Employee{
		{ID: "a", FullName: "Alice", PayType: employee.PayTypePieceRate},
		{ID: "b", FullName: "Bob", PayType: employee.PayTypeFixedMonthly, MonthlySalary: decPtr(t, "6000")},
		{ID: "c", FullName: "Cara", PayType: employee.PayTypePieceRate, CustomRate: decPtr(t, "0.25")},
	})
	rate := decimal.RequireFromString("0.10")

	var rows []attendance.Record
	for day := 1; day <= 28; day++ {
		d := time.Date(2026, time.February, day, 0, 0, 0, 0, time.UTC)
		rows = append(rows,
			record("a", "Alice", d, attendance.StatusPresent, intPtr(day*10)),
			record("b", "Bob", d, attendance.StatusPresent, nil),
			record("c", "Cara", d, attendance.StatusPresent, intPtr(day)),
		)
	}

	baseline := accumulate(rows, emps, rate)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]attendance.Record, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := accumulate(shuffled, emps, rate)
		assert.Equal(t, baseline.TotalOutput, got.TotalOutput)
		assert.True(t, baseline.TotalEarnings.Equal(got.TotalEarnings))
		assert.Equal(t, baseline.PerDate, got.PerDate)
		assert.Equal(t, baseline.PerEmployee, got.PerEmployee)
	}
}

func TestAccumulatePresentWithNilOutput(t *testing.T) {
	emps := employeeIndex([]employee.Employee{
		{ID: "a", FullName: "Alice", PayType: employee.PayTypePieceRate},
	})

	rows := []attendance.Record{
		record("a", "Alice", date(t, "2026-06-01"), attendance.StatusPresent, nil),
	}

	got := accumulate(rows, emps, decimal.RequireFromString("0.10"))

	assert.Equal(t, int64(0), got.TotalOutput)
	assert.True(t, got.TotalEarnings.IsZero())
	require.Len(t, got.PerEmployee, 1)
	assert.Equal(t, 1, got.PerEmployee[0].DaysPresent)
}

func TestAccumulateCrossMonthProration(t *testing.T) {
	emps := employeeIndex([]employee.Employee{
		{ID: "b", FullName: "Bob", PayType: employee.PayTypeFixedMonthly, MonthlySalary: decPtr(t, "6000")},
	})

	// One present day at the end of February, one at the start of March.
	rows := []attendance.Record{
		record("b", "Bob", date(t, "2026-02-28"), attendance.StatusPresent, nil),
		record("b", "Bob", date(t, "2026-03-01"), attendance.StatusPresent, nil),
	}

	got := accumulate(rows, emps, decimal.Zero)

	// 6000/28 + 6000/31, each day prorated by its own month.
	want := decimal.RequireFromString("6000").Div(decimal.NewFromInt(28)).
		Add(decimal.RequireFromString("6000").Div(decimal.NewFromInt(31)))
	assert.True(t, got.TotalEarnings.Equal(want), "earnings %s", got.TotalEarnings)
}

func TestAccumulateUnknownEmployeeEarnsNothing(t *testing.T) {
	got := accumulate([]attendance.Record{
		record("ghost", "Ghost", date(t, "2026-06-01"), attendance.StatusPresent, intPtr(100)),
	}, map[string]employee.Employee{}, decimal.RequireFromString("0.10"))

	// Output still counts; earnings need a known pay policy.
	assert.Equal(t, int64(100), got.TotalOutput)
	assert.True(t, got.TotalEarnings.IsZero())
}

func TestAccumulateEmpty(t *testing.T) {
	got := accumulate(nil, map[string]employee.Employee{}, decimal.Zero)

	assert.Equal(t, int64(0), got.TotalOutput)
	assert.True(t, got.TotalEarnings.IsZero())
	assert.Empty(t, got.PerEmployee)
	assert.Empty(t, got.PerDate)
	assert.NotNil(t, got.PerEmployee)
	assert.NotNil(t, got.PerDate)
}
