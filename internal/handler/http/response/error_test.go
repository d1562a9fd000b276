package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/auth"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/Harshalp4/scantrack-pro/internal/domain/role"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive account", auth.ErrAccountInactive, http.StatusForbidden},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"username taken", employee.ErrUsernameExists, http.StatusConflict},
		{"scope violation", employee.ErrUnauthorized, http.StatusForbidden},
		{"unknown attendance employee", attendance.ErrUnknownEmployee, http.StatusNotFound},
		{"invalid status", attendance.ErrInvalidStatus, http.StatusBadRequest},
		{"location not found", location.ErrLocationNotFound, http.StatusNotFound},
		{"fixed role", role.ErrRoleFixed, http.StatusConflict},
		{"role in use", role.ErrRoleInUse, http.StatusConflict},
		{"unknown error", errors.New("pg: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
		})
	}
}

func TestHandleErrorUnwrapsWrappedSentinels(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("fetch employee"), employee.ErrEmployeeNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		{Field: "status", Message: "status must be present, absent, file_close or holiday"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "date must be in YYYY-MM-DD format", resp.Error.Details["date"])
	assert.Equal(t, "status must be present, absent, file_close or holiday", resp.Error.Details["status"])
}

func TestHandleErrorBlockedLocationDelete(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &location.DeleteBlockedError{
		Counts: location.DependentCounts{Employees: 3, Expenses: 1, Attendance: 42},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "3", resp.Error.Details["employees"])
	assert.Equal(t, "1", resp.Error.Details["expenses"])
	assert.Equal(t, "42", resp.Error.Details["attendance_records"])
}
