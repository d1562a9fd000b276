package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/expense"
	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/Harshalp4/scantrack-pro/internal/domain/report"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/service/compensation"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	ledgerRepo   attendance.LedgerRepository
	employeeRepo employee.EmployeeRepository
	locationRepo location.LocationRepository
	expenseRepo  expense.ExpenseRepository
	rates        compensation.RateSource
}

func NewReportService(
	ledgerRepo attendance.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	expenseRepo expense.ExpenseRepository,
	rates compensation.RateSource,
) report.ReportService {
	return &ReportServiceImpl{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		locationRepo: locationRepo,
		expenseRepo:  expenseRepo,
		rates:        rates,
	}
}

func identityFromContext(ctx context.Context) (scope.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return scope.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return scope.FromClaims(claims)
}

// rollupScoped runs the clamped fetch-and-accumulate pass shared by every
// report. The global default rate is read once per calculation, never cached
// across requests.
func (s *ReportServiceImpl) rollupScoped(ctx context.Context, sc scope.Scope) (report.RollupResult, error) {
	defaultRate, err := s.rates.DefaultScanRate(ctx)
	if err != nil {
		return report.RollupResult{}, err
	}

	rows, err := s.ledgerRepo.ListWindow(ctx, sc)
	if err != nil {
		return report.RollupResult{}, err
	}

	// Include inactive employees: their historical records still count.
	employees, err := s.employeeRepo.List(ctx, employee.ListEmployeesFilter{LocationID: sc.LocationID})
	if err != nil {
		return report.RollupResult{}, err
	}

	return accumulate(rows, employeeIndex(employees), defaultRate), nil
}

// Rollup implements report.ReportService.
func (s *ReportServiceImpl) Rollup(ctx context.Context, requested scope.Scope) (report.RollupResult, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return report.RollupResult{}, err
	}

	return s.rollupScoped(ctx, scope.Clamp(identity, requested))
}

// MonthlyGrid implements report.ReportService.
func (s *ReportServiceImpl) MonthlyGrid(ctx context.Context, locationID *string, year, month int) (report.MonthlyGrid, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return report.MonthlyGrid{}, err
	}

	sc := scope.Clamp(identity, scope.Scope{
		Window:     scope.MonthWindow(year, time.Month(month)),
		LocationID: locationID,
	})

	defaultRate, err := s.rates.DefaultScanRate(ctx)
	if err != nil {
		return report.MonthlyGrid{}, err
	}

	// Active employees only; rows come back grouped by role, name ascending.
	employees, err := s.employeeRepo.List(ctx, employee.ListEmployeesFilter{
		LocationID: sc.LocationID,
		ActiveOnly: true,
	})
	if err != nil {
		return report.MonthlyGrid{}, err
	}
	if sc.EmployeeID != nil {
		filtered := employees[:0]
		for _, emp := range employees {
			if emp.ID == *sc.EmployeeID {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	rows, err := s.ledgerRepo.ListWindow(ctx, sc)
	if err != nil {
		return report.MonthlyGrid{}, err
	}

	return buildGrid(year, time.Month(month), employees, rows, defaultRate), nil
}

// summarize folds a location's client rate and expenses on top of the rollup.
func (s *ReportServiceImpl) summarize(ctx context.Context, loc location.Location, window scope.Window, employeeID *string) (report.LocationSummary, error) {
	locID := loc.ID
	rollup, err := s.rollupScoped(ctx, scope.Scope{
		Window:     window,
		LocationID: &locID,
		EmployeeID: employeeID,
	})
	if err != nil {
		return report.LocationSummary{}, err
	}

	expenses, err := s.expenseRepo.SumWindow(ctx, window, &locID)
	if err != nil {
		return report.LocationSummary{}, err
	}

	revenue := decimal.Zero
	if loc.ClientRate != nil {
		revenue = loc.ClientRate.Mul(decimal.NewFromInt(rollup.TotalOutput))
	}

	cost := rollup.TotalEarnings.Round(2)
	revenue = revenue.Round(2)
	expenses = expenses.Round(2)

	return report.LocationSummary{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		TotalOutput:  rollup.TotalOutput,
		EmployeeCost: cost,
		Expenses:     expenses,
		Revenue:      revenue,
		// May be negative; nothing is clamped.
		Profit: revenue.Sub(cost).Sub(expenses),
	}, nil
}

// LocationSummary implements report.ReportService.
func (s *ReportServiceImpl) LocationSummary(ctx context.Context, locationID string, window scope.Window) (report.LocationSummary, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return report.LocationSummary{}, err
	}

	sc := scope.Clamp(identity, scope.Scope{Window: window, LocationID: &locationID})
	if sc.LocationID == nil {
		// Caller is bound to no location at all.
		return report.LocationSummary{}, location.ErrLocationNotFound
	}

	loc, err := s.locationRepo.GetByID(ctx, *sc.LocationID)
	if err != nil {
		return report.LocationSummary{}, err
	}

	return s.summarize(ctx, loc, window, sc.EmployeeID)
}

// FleetSummary implements report.ReportService. Active locations with no
// activity still appear with all-zero figures.
func (s *ReportServiceImpl) FleetSummary(ctx context.Context, window scope.Window, locationID *string) (report.FleetSummary, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return report.FleetSummary{}, err
	}

	sc := scope.Clamp(identity, scope.Scope{Window: window, LocationID: locationID})

	locations, err := s.locationRepo.List(ctx, true)
	if err != nil {
		return report.FleetSummary{}, err
	}

	fleet := report.FleetSummary{
		Locations: []report.LocationSummary{},
		Totals: report.FleetTotals{
			EmployeeCost: decimal.Zero,
			Expenses:     decimal.Zero,
			Revenue:      decimal.Zero,
			Profit:       decimal.Zero,
		},
	}

	for _, loc := range locations {
		if sc.LocationID != nil && loc.ID != *sc.LocationID {
			continue
		}

		summary, err := s.summarize(ctx, loc, window, sc.EmployeeID)
		if err != nil {
			return report.FleetSummary{}, err
		}

		fleet.Locations = append(fleet.Locations, summary)
		fleet.Totals.TotalOutput += summary.TotalOutput
		fleet.Totals.EmployeeCost = fleet.Totals.EmployeeCost.Add(summary.EmployeeCost)
		fleet.Totals.Expenses = fleet.Totals.Expenses.Add(summary.Expenses)
		fleet.Totals.Revenue = fleet.Totals.Revenue.Add(summary.Revenue)
		fleet.Totals.Profit = fleet.Totals.Profit.Add(summary.Profit)
	}

	return fleet, nil
}

// EmployeeStats implements report.ReportService.
func (s *ReportServiceImpl) EmployeeStats(ctx context.Context) (report.EmployeeStats, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return report.EmployeeStats{}, err
	}

	self := identity.EmployeeID
	today := time.Now().UTC().Truncate(24 * time.Hour)

	windows := []scope.Window{
		{From: today, To: today},
		scope.MonthWindow(today.Year(), today.Month()),
		{From: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), To: today},
	}

	var periods [3]report.PeriodStats
	for i, window := range windows {
		rollup, err := s.rollupScoped(ctx, scope.Scope{
			Window:     window,
			LocationID: identity.LocationID,
			EmployeeID: &self,
		})
		if err != nil {
			return report.EmployeeStats{}, err
		}

		periods[i] = report.PeriodStats{
			Output:   rollup.TotalOutput,
			Earnings: rollup.TotalEarnings.Round(2),
		}
		for _, et := range rollup.PerEmployee {
			if et.EmployeeID == self {
				periods[i].DaysPresent = et.DaysPresent
			}
		}
	}

	return report.EmployeeStats{
		Today:     periods[0],
		ThisMonth: periods[1],
		AllTime:   periods[2],
	}, nil
}
