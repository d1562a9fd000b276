package role

import "context"

// RoleRepository defines data access for the roles catalog.
type RoleRepository interface {
	List(ctx context.Context) ([]Role, error)

	GetByName(ctx context.Context, name string) (Role, error)

	Create(ctx context.Context, r Role) (Role, error)

	// Delete removes a custom role. Fixed roles and roles still assigned to
	// employees are refused by the service layer.
	Delete(ctx context.Context, name string) error

	// CountEmployees counts employees currently holding the role.
	CountEmployees(ctx context.Context, name string) (int64, error)
}
