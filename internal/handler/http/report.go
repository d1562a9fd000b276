package http

import (
	"net/http"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/report"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Rollup(w http.ResponseWriter, r *http.Request)
	MonthlyGrid(w http.ResponseWriter, r *http.Request)
	LocationSummary(w http.ResponseWriter, r *http.Request)
	FleetSummary(w http.ResponseWriter, r *http.Request)
	MyStats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Rollup implements ReportHandler.
func (h *reportHandlerImpl) Rollup(w http.ResponseWriter, r *http.Request) {
	requested := scope.Scope{
		Window:     windowFromQuery(r),
		LocationID: queryString(r, "location_id"),
		EmployeeID: queryString(r, "employee_id"),
	}

	result, err := h.reportService.Rollup(r.Context(), requested)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyGrid implements ReportHandler.
func (h *reportHandlerImpl) MonthlyGrid(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())
	if y := queryInt(r, "year"); y != nil {
		year = *y
	}
	if m := queryInt(r, "month"); m != nil {
		month = *m
	}

	grid, err := h.reportService.MonthlyGrid(r.Context(), queryString(r, "location_id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

// LocationSummary implements ReportHandler.
func (h *reportHandlerImpl) LocationSummary(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "id")

	summary, err := h.reportService.LocationSummary(r.Context(), locationID, windowFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// FleetSummary implements ReportHandler.
func (h *reportHandlerImpl) FleetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.FleetSummary(r.Context(), windowFromQuery(r), queryString(r, "location_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// MyStats implements ReportHandler.
func (h *reportHandlerImpl) MyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.EmployeeStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
