package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harshalp4/scantrack-pro/internal/handler/http/response"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// okHandler satisfies every handler interface so routing and middleware can
// be exercised without services behind them.
type okHandler struct{}

func (okHandler) ok(w http.ResponseWriter) { response.Success(w, nil) }

func (h okHandler) Login(w http.ResponseWriter, r *http.Request)           { h.ok(w) }
func (h okHandler) RefreshToken(w http.ResponseWriter, r *http.Request)    { h.ok(w) }
func (h okHandler) Logout(w http.ResponseWriter, r *http.Request)          { h.ok(w) }
func (h okHandler) Record(w http.ResponseWriter, r *http.Request)          { h.ok(w) }
func (h okHandler) RecordBulk(w http.ResponseWriter, r *http.Request)      { h.ok(w) }
func (h okHandler) List(w http.ResponseWriter, r *http.Request)            { h.ok(w) }
func (h okHandler) Rollup(w http.ResponseWriter, r *http.Request)          { h.ok(w) }
func (h okHandler) MonthlyGrid(w http.ResponseWriter, r *http.Request)     { h.ok(w) }
func (h okHandler) LocationSummary(w http.ResponseWriter, r *http.Request) { h.ok(w) }
func (h okHandler) FleetSummary(w http.ResponseWriter, r *http.Request)    { h.ok(w) }
func (h okHandler) MyStats(w http.ResponseWriter, r *http.Request)         { h.ok(w) }
func (h okHandler) Create(w http.ResponseWriter, r *http.Request)          { h.ok(w) }
func (h okHandler) Get(w http.ResponseWriter, r *http.Request)             { h.ok(w) }
func (h okHandler) Update(w http.ResponseWriter, r *http.Request)          { h.ok(w) }
func (h okHandler) Delete(w http.ResponseWriter, r *http.Request)          { h.ok(w) }
func (h okHandler) Deactivate(w http.ResponseWriter, r *http.Request)      { h.ok(w) }
func (h okHandler) Reactivate(w http.ResponseWriter, r *http.Request)      { h.ok(w) }
func (h okHandler) GetScanRate(w http.ResponseWriter, r *http.Request)     { h.ok(w) }
func (h okHandler) SetScanRate(w http.ResponseWriter, r *http.Request)     { h.ok(w) }
func (h okHandler) Snapshot(w http.ResponseWriter, r *http.Request)        { h.ok(w) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	stub := okHandler{}
	router := NewRouter(jwtService, []string{"http://localhost:3000"}, Handlers{
		Auth:       stub,
		Attendance: stub,
		Report:     stub,
		Employee:   stub,
		Location:   stub,
		Expense:    stub,
		Role:       stub,
		Settings:   stub,
		Backup:     stub,
	})
	return router, jwtService
}

func get(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func accessToken(t *testing.T, jwtService jwt.Service, role string, locationID *string) string {
	t.Helper()

	token, _, err := jwtService.GenerateAccessToken("emp-1", "someone", role, locationID)
	require.NoError(t, err)
	return token
}

func TestFleetRouteReachableByManagers(t *testing.T) {
	router, jwtService := newTestRouter(t)
	locID := "loc-1"

	// A manager asking for the whole fleet, even another location explicitly,
	// is let through; narrowing is the scoper's job, not the router's.
	manager := accessToken(t, jwtService, "location_manager", &locID)
	rec := get(t, router, "/api/v1/reports/fleet?location_id=loc-2", manager)
	assert.Equal(t, http.StatusOK, rec.Code)

	admin := accessToken(t, jwtService, "super_admin", nil)
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/reports/fleet", admin).Code)

	operator := accessToken(t, jwtService, "operator", &locID)
	assert.Equal(t, http.StatusForbidden, get(t, router, "/api/v1/reports/fleet", operator).Code)
}

func TestLocationSummaryRouteRoles(t *testing.T) {
	router, jwtService := newTestRouter(t)
	locID := "loc-1"

	manager := accessToken(t, jwtService, "location_manager", &locID)
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/reports/locations/loc-1", manager).Code)

	operator := accessToken(t, jwtService, "operator", &locID)
	assert.Equal(t, http.StatusForbidden, get(t, router, "/api/v1/reports/locations/loc-1", operator).Code)
}

func TestSuperAdminOnlyRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t)
	locID := "loc-1"

	manager := accessToken(t, jwtService, "location_manager", &locID)
	assert.Equal(t, http.StatusForbidden, get(t, router, "/api/v1/settings/scan-rate", manager).Code)

	admin := accessToken(t, jwtService, "super_admin", nil)
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/settings/scan-rate", admin).Code)
}

func TestAuthenticationRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/api/v1/reports/fleet", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/api/v1/attendance", "").Code)
}
