package attendance

import (
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
)

type RecordRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	OutputCount *int    `json:"output_count"`
	Note        *string `json:"note"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, absent, file_close or holiday"})
	}
	if r.OutputCount != nil && *r.OutputCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "output_count", Message: "output_count cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkRecordRequest records one date across many employees in a single call.
// Rows are upserted independently; one bad row does not block the rest.
type BulkRecordRequest struct {
	Date    string          `json:"date"`
	Entries []BulkRecordRow `json:"entries"`
}

type BulkRecordRow struct {
	EmployeeID  string  `json:"employee_id"`
	Status      string  `json:"status"`
	OutputCount *int    `json:"output_count"`
	Note        *string `json:"note"`
}

func (r *BulkRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkRecordResponse reports per-row outcomes of a bulk upsert.
type BulkRecordResponse struct {
	Saved  int            `json:"saved"`
	Failed []BulkRowError `json:"failed,omitempty"`
}

type BulkRowError struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

// ListFilter narrows a ledger listing. An explicit date range wins over a
// (year, month) pair when both are supplied.
type ListFilter struct {
	StartDate  *string
	EndDate    *string
	Year       *int
	Month      *int
	LocationID *string
	EmployeeID *string
}

// ResolveWindow translates the filter's date inputs into a concrete window.
// With no date input at all it returns ok=false and callers fall back to the
// current month.
func (f ListFilter) ResolveWindow() (scope.Window, bool) {
	if f.StartDate != nil && f.EndDate != nil {
		from, okFrom := validator.IsValidDate(*f.StartDate)
		to, okTo := validator.IsValidDate(*f.EndDate)
		if okFrom && okTo {
			return scope.Window{From: from, To: to}, true
		}
	}
	if f.Year != nil && f.Month != nil && validator.IsValidMonth(*f.Year, *f.Month) {
		return scope.MonthWindow(*f.Year, time.Month(*f.Month)), true
	}
	return scope.Window{}, false
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       Status  `json:"status"`
	OutputCount  *int    `json:"output_count,omitempty"`
	Note         *string `json:"note,omitempty"`
	RecordedBy   string  `json:"recorded_by"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       rec.Status,
		OutputCount:  rec.OutputCount,
		Note:         rec.Note,
		RecordedBy:   rec.RecordedBy,
	}
}
