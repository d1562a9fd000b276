package report

import (
	"context"
	"testing"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/expense"
	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeLedgerRepo struct {
	records []attendance.Record
}

func (f *fakeLedgerRepo) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeLedgerRepo) ListWindow(ctx context.Context, sc scope.Scope) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !sc.Window.Contains(rec.Date) {
			continue
		}
		if sc.LocationID != nil && (rec.LocationID == nil || *rec.LocationID != *sc.LocationID) {
			continue
		}
		if sc.EmployeeID != nil && rec.EmployeeID != *sc.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeLedgerRepo) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	return 0, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.LocationID != nil && (emp.LocationID == nil || *emp.LocationID != *filter.LocationID) {
			continue
		}
		if filter.ActiveOnly && !emp.Active {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) CountAttendance(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeLocationRepo struct {
	locations []location.Location
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	return loc, nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id string) (location.Location, error) {
	for _, loc := range f.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return location.Location{}, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) Update(ctx context.Context, loc location.Location) error { return nil }

func (f *fakeLocationRepo) List(ctx context.Context, activeOnly bool) ([]location.Location, error) {
	var out []location.Location
	for _, loc := range f.locations {
		if activeOnly && !loc.Active {
			continue
		}
		out = append(out, loc)
	}
	return out, nil
}

func (f *fakeLocationRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }

func (f *fakeLocationRepo) DependentCounts(ctx context.Context, id string) (location.DependentCounts, error) {
	return location.DependentCounts{}, nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id string) error { return nil }

type stubExpenseRepo struct {
	sum decimal.Decimal
}

func (f *stubExpenseRepo) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	return exp, nil
}

func (f *stubExpenseRepo) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	return expense.Expense{}, expense.ErrExpenseNotFound
}

func (f *stubExpenseRepo) Update(ctx context.Context, exp expense.Expense) error { return nil }

func (f *stubExpenseRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *stubExpenseRepo) ListWindow(ctx context.Context, window scope.Window, locationID *string) ([]expense.Expense, error) {
	return nil, nil
}

func (f *stubExpenseRepo) SumWindow(ctx context.Context, window scope.Window, locationID *string) (decimal.Decimal, error) {
	return f.sum, nil
}

type fixedRateSource struct {
	rate decimal.Decimal
}

func (f fixedRateSource) DefaultScanRate(ctx context.Context) (decimal.Decimal, error) {
	return f.rate, nil
}

// contextWithIdentity builds a request context carrying token claims the way
// the router's verifier middleware does.
func contextWithIdentity(t *testing.T, employeeID, role string, locationID *string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	}
	if locationID != nil {
		claims["location_id"] = *locationID
	}

	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

// --- fixtures ---

// twoWorkersOneSite: location L billed at 0.50 per unit, piece-rate worker A
// at the 0.10 default, fixed-monthly worker B at 6000, all of February 2026
// present, A producing 200 units total.
func twoWorkersOneSite(t *testing.T) (*fakeLedgerRepo, *fakeEmployeeRepo, *fakeLocationRepo, *stubExpenseRepo) {
	locID := "loc-1"

	employees := []employee.Employee{
		{ID: "emp-a", FullName: "Alice", Role: "operator", PayType: employee.PayTypePieceRate, LocationID: &locID, Active: true},
		{ID: "emp-b", FullName: "Bob", Role: "operator", PayType: employee.PayTypeFixedMonthly, MonthlySalary: decPtr(t, "6000"), LocationID: &locID, Active: true},
	}

	var records []attendance.Record
	for day := 1; day <= 28; day++ {
		d := time.Date(2026, time.February, day, 0, 0, 0, 0, time.UTC)
		aliceOut := 0
		if day <= 10 {
			aliceOut = 20 // 200 units over the first ten days
		}
		a := record("emp-a", "Alice", d, attendance.StatusPresent, intPtr(aliceOut))
		a.LocationID = &locID
		b := record("emp-b", "Bob", d, attendance.StatusPresent, nil)
		b.LocationID = &locID
		records = append(records, a, b)
	}

	clientRate := decimal.RequireFromString("0.50")
	locations := []location.Location{
		{ID: locID, Name: "Site One", ClientRate: &clientRate, Active: true},
	}

	return &fakeLedgerRepo{records: records},
		&fakeEmployeeRepo{employees: employees},
		&fakeLocationRepo{locations: locations},
		&stubExpenseRepo{}
}

func febWindow() scope.Window {
	return scope.MonthWindow(2026, time.February)
}

func TestRollupScenario(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})

	ctx := contextWithIdentity(t, "admin-1", scope.RoleSuperAdmin, nil)
	got, err := svc.Rollup(ctx, scope.Scope{Window: febWindow()})
	require.NoError(t, err)

	assert.Equal(t, int64(200), got.TotalOutput)
	// Alice 200 x 0.10 = 20, Bob a full February of 6000.
	assert.True(t, got.TotalEarnings.Round(2).Equal(decimal.RequireFromString("6020")), "earnings %s", got.TotalEarnings)

	require.Len(t, got.PerEmployee, 2)
	assert.Equal(t, "Alice", got.PerEmployee[0].Name)
	assert.True(t, got.PerEmployee[0].Earnings.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, "Bob", got.PerEmployee[1].Name)
	assert.True(t, got.PerEmployee[1].Earnings.Round(2).Equal(decimal.RequireFromString("6000")))
}

func TestLocationSummaryScenario(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	// Only Alice's output drives revenue; keep Bob out to match the margin
	// arithmetic: 200 units at 0.50 billed, 20.00 cost, no expenses.
	emps.employees = emps.employees[:1]
	ledger.records = filterRecords(ledger.records, "emp-a")

	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})
	ctx := contextWithIdentity(t, "admin-1", scope.RoleSuperAdmin, nil)

	got, err := svc.LocationSummary(ctx, "loc-1", febWindow())
	require.NoError(t, err)

	assert.Equal(t, "Site One", got.LocationName)
	assert.Equal(t, int64(200), got.TotalOutput)
	assert.True(t, got.EmployeeCost.Equal(decimal.RequireFromString("20")))
	assert.True(t, got.Revenue.Equal(decimal.RequireFromString("100")))
	assert.True(t, got.Expenses.IsZero())
	assert.True(t, got.Profit.Equal(decimal.RequireFromString("80")), "profit %s", got.Profit)
}

func TestLocationSummaryNegativeProfit(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	exps.sum = decimal.RequireFromString("7000")

	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})
	ctx := contextWithIdentity(t, "admin-1", scope.RoleSuperAdmin, nil)

	got, err := svc.LocationSummary(ctx, "loc-1", febWindow())
	require.NoError(t, err)

	// Revenue 100 against 6020 cost and 7000 expenses.
	assert.True(t, got.Profit.IsNegative())
}

func TestLocationSummaryClampsManagerToOwnSite(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	otherRate := decimal.RequireFromString("1.00")
	locs.locations = append(locs.locations, location.Location{ID: "loc-2", Name: "Site Two", ClientRate: &otherRate, Active: true})

	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})
	ctx := contextWithIdentity(t, "mgr-1", scope.RoleLocationManager, strPtr("loc-1"))

	// Asking for someone else's site silently yields your own.
	got, err := svc.LocationSummary(ctx, "loc-2", febWindow())
	require.NoError(t, err)
	assert.Equal(t, "loc-1", got.LocationID)
}

func TestRollupClampsOperatorToSelf(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})

	ctx := contextWithIdentity(t, "emp-a", scope.RoleOperator, strPtr("loc-1"))
	got, err := svc.Rollup(ctx, scope.Scope{Window: febWindow()})
	require.NoError(t, err)

	// Bob's rows are invisible to Alice.
	require.Len(t, got.PerEmployee, 1)
	assert.Equal(t, "emp-a", got.PerEmployee[0].EmployeeID)
	assert.Equal(t, int64(200), got.TotalOutput)
	assert.True(t, got.TotalEarnings.Equal(decimal.RequireFromString("20")))
}

func TestRollupClampsCustomRoleToSelf(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})

	// An unknown role gets operator visibility, nothing more.
	ctx := contextWithIdentity(t, "emp-b", "night_supervisor", strPtr("loc-1"))
	got, err := svc.Rollup(ctx, scope.Scope{Window: febWindow(), EmployeeID: strPtr("emp-a")})
	require.NoError(t, err)

	require.Len(t, got.PerEmployee, 1)
	assert.Equal(t, "emp-b", got.PerEmployee[0].EmployeeID)
}

func TestFleetSummaryIncludesIdleSites(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	locs.locations = append(locs.locations, location.Location{ID: "loc-2", Name: "Site Two", Active: true})

	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})
	ctx := contextWithIdentity(t, "admin-1", scope.RoleSuperAdmin, nil)

	got, err := svc.FleetSummary(ctx, febWindow(), nil)
	require.NoError(t, err)

	require.Len(t, got.Locations, 2)
	assert.Equal(t, "Site Two", got.Locations[1].LocationName)
	assert.Equal(t, int64(0), got.Locations[1].TotalOutput)
	assert.True(t, got.Locations[1].Profit.IsZero())

	assert.Equal(t, int64(200), got.Totals.TotalOutput)
	assert.True(t, got.Totals.Revenue.Equal(decimal.RequireFromString("100")))
}

func TestMonthlyGridOperatorSeesOnlyOwnRow(t *testing.T) {
	ledger, emps, locs, exps := twoWorkersOneSite(t)
	svc := NewReportService(ledger, emps, locs, exps, fixedRateSource{rate: decimal.RequireFromString("0.10")})

	ctx := contextWithIdentity(t, "emp-a", scope.RoleOperator, strPtr("loc-1"))
	grid, err := svc.MonthlyGrid(ctx, nil, 2026, 2)
	require.NoError(t, err)

	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "emp-a", grid.Rows[0].EmployeeID)
	assert.Equal(t, 28, grid.Days)
}

func filterRecords(records []attendance.Record, employeeID string) []attendance.Record {
	var out []attendance.Record
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out
}
