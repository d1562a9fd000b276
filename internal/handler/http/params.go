package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
)

// queryString returns a query parameter as *string, nil when absent or blank.
func queryString(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// queryInt returns a query parameter as *int, nil when absent or unparsable.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// windowFromQuery resolves start_date/end_date, else year/month, else the
// current calendar month.
func windowFromQuery(r *http.Request) scope.Window {
	if start, end := queryString(r, "start_date"), queryString(r, "end_date"); start != nil && end != nil {
		from, okFrom := validator.IsValidDate(*start)
		to, okTo := validator.IsValidDate(*end)
		if okFrom && okTo {
			return scope.Window{From: from, To: to}
		}
	}
	if year, month := queryInt(r, "year"), queryInt(r, "month"); year != nil && month != nil {
		if validator.IsValidMonth(*year, *month) {
			return scope.MonthWindow(*year, time.Month(*month))
		}
	}
	now := time.Now().UTC()
	return scope.MonthWindow(now.Year(), now.Month())
}
