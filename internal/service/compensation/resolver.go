// Package compensation decides which pay rule applies to an employee and how
// much a single ledger row is worth.
package compensation

import (
	"context"
	"errors"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// RateSource supplies the global default piece rate. It is consulted at
// calculation time on every call, never cached across requests, because the
// default can change between calls.
type RateSource interface {
	DefaultScanRate(ctx context.Context) (decimal.Decimal, error)
}

type settingsRateSource struct {
	repo settings.SettingsRepository
}

// NewSettingsRateSource reads the default rate from the settings table.
// A missing or unparsable value resolves to zero: absence of a rate is a
// valid "not yet configured" state, not an error.
func NewSettingsRateSource(repo settings.SettingsRepository) RateSource {
	return &settingsRateSource{repo: repo}
}

func (s *settingsRateSource) DefaultScanRate(ctx context.Context) (decimal.Decimal, error) {
	value, err := s.repo.Get(ctx, settings.KeyScanRate)
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, nil
	}
	return rate, nil
}

// EffectiveRate returns the piece rate in force for the employee: the custom
// override when set, the supplied global default otherwise. For fixed-monthly
// employees the rate is zero; their pay does not depend on output.
func EffectiveRate(emp employee.Employee, defaultRate decimal.Decimal) decimal.Decimal {
	if emp.PayType != employee.PayTypePieceRate {
		return decimal.Zero
	}
	if emp.CustomRate != nil {
		return *emp.CustomRate
	}
	return defaultRate
}

// DaysInMonth returns the number of calendar days in the month of d.
func DaysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contribution computes the earnings a single ledger row adds.
//
// Piece rate: output × effective rate, zero when not present or output is
// unrecorded. Fixed monthly: salary divided by the calendar days of the
// record's own month for each present day, so a window spanning two months
// prorates each day by its own month's length.
//
// Missing configuration (no salary, no rate) degrades to zero rather than
// failing, so reporting stays available with incomplete setup.
func Contribution(emp employee.Employee, date time.Time, output *int, present bool, defaultRate decimal.Decimal) decimal.Decimal {
	if !present {
		return decimal.Zero
	}

	switch emp.PayType {
	case employee.PayTypeFixedMonthly:
		if emp.MonthlySalary == nil {
			return decimal.Zero
		}
		return emp.MonthlySalary.Div(decimal.NewFromInt(int64(DaysInMonth(date))))
	default:
		if output == nil {
			return decimal.Zero
		}
		return EffectiveRate(emp, defaultRate).Mul(decimal.NewFromInt(int64(*output)))
	}
}
