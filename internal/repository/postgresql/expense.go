package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/expense"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepository) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (
			id, location_id, date, amount, description, paid_by, paid_from, attachment_url
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		exp.ID, exp.LocationID, exp.Date, exp.Amount, exp.Description,
		exp.PaidBy, exp.PaidFrom, exp.AttachmentURL,
	).Scan(&exp.CreatedAt, &exp.UpdatedAt)

	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return exp, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepository) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			x.id, x.location_id, x.date, x.amount, x.description,
			x.paid_by, x.paid_from, x.attachment_url, x.created_at, x.updated_at,
			l.name AS location_name
		FROM expenses x
		LEFT JOIN locations l ON l.id = x.location_id
		WHERE x.id = $1
	`

	var exp expense.Expense
	err := q.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.LocationID, &exp.Date, &exp.Amount, &exp.Description,
		&exp.PaidBy, &exp.PaidFrom, &exp.AttachmentURL, &exp.CreatedAt, &exp.UpdatedAt,
		&exp.LocationName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return exp, nil
}

// Update implements expense.ExpenseRepository.
func (r *expenseRepository) Update(ctx context.Context, exp expense.Expense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses SET
			date        = $1,
			amount      = $2,
			description = $3,
			paid_by     = $4,
			paid_from   = $5,
			updated_at  = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		exp.Date, exp.Amount, exp.Description, exp.PaidBy, exp.PaidFrom, exp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return nil
}

// Delete implements expense.ExpenseRepository.
func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

// ListWindow implements expense.ExpenseRepository.
func (r *expenseRepository) ListWindow(ctx context.Context, window scope.Window, locationID *string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "x.date >= $1 AND x.date <= $2"
	args := []interface{}{window.From, window.To}
	if locationID != nil && *locationID != "" {
		baseWhere += " AND x.location_id = $3"
		args = append(args, *locationID)
	}

	query := fmt.Sprintf(`
		SELECT
			x.id, x.location_id, x.date, x.amount, x.description,
			x.paid_by, x.paid_from, x.attachment_url, x.created_at, x.updated_at,
			l.name AS location_name
		FROM expenses x
		LEFT JOIN locations l ON l.id = x.location_id
		WHERE %s
		ORDER BY x.date DESC, x.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var exp expense.Expense
		err := rows.Scan(
			&exp.ID, &exp.LocationID, &exp.Date, &exp.Amount, &exp.Description,
			&exp.PaidBy, &exp.PaidFrom, &exp.AttachmentURL, &exp.CreatedAt, &exp.UpdatedAt,
			&exp.LocationName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	return expenses, rows.Err()
}

// SumWindow implements expense.ExpenseRepository. Expenses are attributed by
// their own date, not by any attendance date.
func (r *expenseRepository) SumWindow(ctx context.Context, window scope.Window, locationID *string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1 AND date <= $2
	`
	args := []interface{}{window.From, window.To}
	if locationID != nil && *locationID != "" {
		query += " AND location_id = $3"
		args = append(args, *locationID)
	} else {
		query += " AND location_id IS NULL"
	}

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return total, nil
}
