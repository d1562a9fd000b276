package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrUnauthorized    = errors.New("unauthorized to manage this expense")
)
