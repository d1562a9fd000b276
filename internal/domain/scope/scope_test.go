package scope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClamp(t *testing.T) {
	window := MonthWindow(2026, time.June)

	cases := []struct {
		name         string
		identity     Identity
		requested    Scope
		wantLocation *string
		wantEmployee *string
	}{
		{
			name:      "super admin keeps any filter",
			identity:  Identity{EmployeeID: "admin", Role: RoleSuperAdmin},
			requested: Scope{Window: window, LocationID: strPtr("loc-2"), EmployeeID: strPtr("emp-9")},

			wantLocation: strPtr("loc-2"),
			wantEmployee: strPtr("emp-9"),
		},
		{
			name:      "super admin unfiltered stays unfiltered",
			identity:  Identity{EmployeeID: "admin", Role: RoleSuperAdmin},
			requested: Scope{Window: window},
		},
		{
			name:      "manager forced onto own location",
			identity:  Identity{EmployeeID: "mgr", Role: RoleLocationManager, LocationID: strPtr("loc-1")},
			requested: Scope{Window: window, LocationID: strPtr("loc-2")},

			wantLocation: strPtr("loc-1"),
		},
		{
			name:      "manager keeps employee filter inside own location",
			identity:  Identity{EmployeeID: "mgr", Role: RoleLocationManager, LocationID: strPtr("loc-1")},
			requested: Scope{Window: window, EmployeeID: strPtr("emp-3")},

			wantLocation: strPtr("loc-1"),
			wantEmployee: strPtr("emp-3"),
		},
		{
			name:      "manager with no bound location clamps to self",
			identity:  Identity{EmployeeID: "mgr-2", Role: RoleLocationManager},
			requested: Scope{Window: window, LocationID: strPtr("loc-2"), EmployeeID: strPtr("emp-9")},

			wantEmployee: strPtr("mgr-2"),
		},
		{
			name:      "operator forced onto self",
			identity:  Identity{EmployeeID: "emp-1", Role: RoleOperator, LocationID: strPtr("loc-1")},
			requested: Scope{Window: window, LocationID: strPtr("loc-2"), EmployeeID: strPtr("emp-9")},

			wantLocation: strPtr("loc-1"),
			wantEmployee: strPtr("emp-1"),
		},
		{
			name:      "custom role treated like operator",
			identity:  Identity{EmployeeID: "emp-7", Role: "night_supervisor", LocationID: strPtr("loc-3")},
			requested: Scope{Window: window, EmployeeID: strPtr("emp-9")},

			wantLocation: strPtr("loc-3"),
			wantEmployee: strPtr("emp-7"),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Clamp(c.identity, c.requested)

			assert.Equal(t, c.requested.Window, got.Window, "the window is never touched")
			if c.wantLocation == nil {
				assert.Nil(t, got.LocationID)
			} else {
				require.NotNil(t, got.LocationID)
				assert.Equal(t, *c.wantLocation, *got.LocationID)
			}
			if c.wantEmployee == nil {
				assert.Nil(t, got.EmployeeID)
			} else {
				require.NotNil(t, got.EmployeeID)
				assert.Equal(t, *c.wantEmployee, *got.EmployeeID)
			}
		})
	}
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(2026, time.February)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), w.To)

	leap := MonthWindow(2024, time.February)
	assert.Equal(t, 29, leap.To.Day())
}

func TestWindowContains(t *testing.T) {
	w := MonthWindow(2026, time.June)

	assert.True(t, w.Contains(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFromClaims(t *testing.T) {
	t.Run("complete claims", func(t *testing.T) {
		id, err := FromClaims(map[string]interface{}{
			"employee_id": "emp-1",
			"role":        "operator",
			"location_id": "loc-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "emp-1", id.EmployeeID)
		assert.Equal(t, "operator", id.Role)
		require.NotNil(t, id.LocationID)
		assert.Equal(t, "loc-1", *id.LocationID)
	})

	t.Run("no location bound", func(t *testing.T) {
		id, err := FromClaims(map[string]interface{}{
			"employee_id": "admin-1",
			"role":        RoleSuperAdmin,
		})
		require.NoError(t, err)
		assert.Nil(t, id.LocationID)
	})

	t.Run("missing identity claims", func(t *testing.T) {
		_, err := FromClaims(map[string]interface{}{"role": "operator"})
		assert.ErrorIs(t, err, ErrMissingIdentity)

		_, err = FromClaims(map[string]interface{}{"employee_id": "emp-1"})
		assert.ErrorIs(t, err, ErrMissingIdentity)

		_, err = FromClaims(map[string]interface{}{})
		assert.ErrorIs(t, err, ErrMissingIdentity)
	})
}

func TestIsPrivileged(t *testing.T) {
	assert.True(t, IsPrivileged(RoleSuperAdmin))
	assert.True(t, IsPrivileged(RoleLocationManager))
	assert.False(t, IsPrivileged(RoleOperator))
	assert.False(t, IsPrivileged("night_supervisor"))
}
