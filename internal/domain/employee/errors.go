package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrUsernameExists          = errors.New("username already taken")
	ErrInvalidPayType          = errors.New("pay type must be piece_rate or fixed_monthly")
	ErrUnauthorized            = errors.New("unauthorized to manage this employee")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrEmployeeHasRecords      = errors.New("employee has attendance records and can only be deactivated")
	ErrCannotDeleteSelf        = errors.New("cannot delete your own employee record")
)
