package scope

import "time"

// Fixed privileged roles. Custom roles created at runtime are plain labels
// and carry no elevated visibility.
const (
	RoleSuperAdmin      = "super_admin"
	RoleLocationManager = "location_manager"
	RoleOperator        = "operator"
)

// Identity is the caller extracted from the request token: who they are,
// which role bucket they belong to and which location they are bound to.
type Identity struct {
	EmployeeID string
	Role       string
	LocationID *string
}

// Window is an inclusive date range.
type Window struct {
	From time.Time
	To   time.Time
}

// MonthWindow returns the first/last-of-month window for a calendar month.
func MonthWindow(year int, month time.Month) Window {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{From: from, To: from.AddDate(0, 1, -1)}
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// Scope is a requested query scope: a time window plus optional location and
// employee filters.
type Scope struct {
	Window     Window
	LocationID *string
	EmployeeID *string
}

// Clamp narrows a requested scope to what the identity is permitted to see.
// It never fails: out-of-scope requests are silently pulled back inside the
// caller's visibility rather than rejected, so a denied filter is
// indistinguishable from an unspecified one.
//
//   - super_admin: unrestricted; any explicit location filter is honored.
//   - location_manager: the location filter is forced to the bound location,
//     whatever was requested. A manager bound to no location clamps to self
//     like an operator rather than going unrestricted.
//   - operator and every custom role: both location and employee filters are
//     forced to the caller themselves.
func Clamp(id Identity, req Scope) Scope {
	if id.Role == RoleSuperAdmin {
		return req
	}
	if id.Role == RoleLocationManager && id.LocationID != nil {
		req.LocationID = id.LocationID
		return req
	}
	req.LocationID = id.LocationID
	self := id.EmployeeID
	req.EmployeeID = &self
	return req
}

// IsPrivileged reports whether the role belongs to the fixed privileged set
// with visibility beyond the caller's own records.
func IsPrivileged(role string) bool {
	return role == RoleSuperAdmin || role == RoleLocationManager
}
