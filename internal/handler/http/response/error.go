package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/auth"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/expense"
	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/Harshalp4/scantrack-pro/internal/domain/role"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A blocked location delete carries the dependent counts so the client
	// can tell the user what is in the way.
	var blocked *location.DeleteBlockedError
	if errors.As(err, &blocked) {
		ConflictWithDetails(w, "Location has dependent records and cannot be deleted", map[string]string{
			"employees":          strconv.FormatInt(blocked.Counts.Employees, 10),
			"expenses":           strconv.FormatInt(blocked.Counts.Expenses, 10),
			"attendance_records": strconv.FormatInt(blocked.Counts.Attendance, 10),
		})
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed to manage this employee")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrEmployeeHasRecords):
		Conflict(w, "Employee has attendance records and can only be deactivated")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete your own employee record")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnknownEmployee):
		NotFound(w, "Attendance entry references an unknown employee")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrLocationNameExists):
		Conflict(w, "Location name already exists")
	case errors.Is(err, location.ErrLocationAlreadyActive):
		Conflict(w, "Location is already active")
	case errors.Is(err, location.ErrLocationAlreadyInactive):
		Conflict(w, "Location is already inactive")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrUnauthorized):
		Forbidden(w, "Not allowed to manage this expense")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleExists):
		Conflict(w, "Role already exists")
	case errors.Is(err, role.ErrRoleFixed):
		Conflict(w, "Fixed roles cannot be deleted")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role is still assigned to employees")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
