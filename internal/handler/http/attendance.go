package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/handler/http/response"
	attendanceservice "github.com/Harshalp4/scantrack-pro/internal/service/attendance"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	RecordBulk(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	ledgerService attendanceservice.LedgerService
}

func NewAttendanceHandler(ledgerService attendanceservice.LedgerService) AttendanceHandler {
	return &attendanceHandlerImpl{
		ledgerService: ledgerService,
	}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}

// RecordBulk implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordBulk(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordBulk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.RecordBulk(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		StartDate:  queryString(r, "start_date"),
		EndDate:    queryString(r, "end_date"),
		Year:       queryInt(r, "year"),
		Month:      queryInt(r, "month"),
		LocationID: queryString(r, "location_id"),
		EmployeeID: queryString(r, "employee_id"),
	}

	records, err := h.ledgerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
