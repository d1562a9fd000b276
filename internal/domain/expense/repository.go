package expense

import (
	"context"

	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/shopspring/decimal"
)

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, exp Expense) (Expense, error)

	GetByID(ctx context.Context, id string) (Expense, error)

	Update(ctx context.Context, exp Expense) error

	Delete(ctx context.Context, id string) error

	// ListWindow returns expenses whose date falls inside the window,
	// optionally filtered by location, ordered date descending.
	ListWindow(ctx context.Context, window scope.Window, locationID *string) ([]Expense, error)

	// SumWindow totals expense amounts by expense date inside the window for
	// one location. A nil locationID sums the unassigned admin bucket.
	SumWindow(ctx context.Context, window scope.Window, locationID *string) (decimal.Decimal, error)
}
