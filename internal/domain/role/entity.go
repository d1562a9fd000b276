package role

import (
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
)

// Role is a named capability bucket. The fixed seed roles carry the hard
// coded visibility of the scoper; custom roles are cosmetic labels with no
// elevated visibility.
type Role struct {
	Name      string
	Label     string
	Fixed     bool
	CreatedAt time.Time
}

// FixedRoles is the non-deletable seed set.
func FixedRoles() []Role {
	return []Role{
		{Name: scope.RoleSuperAdmin, Label: "Super Admin", Fixed: true},
		{Name: scope.RoleLocationManager, Label: "Location Manager", Fixed: true},
		{Name: scope.RoleOperator, Label: "Operator", Fixed: true},
	}
}
