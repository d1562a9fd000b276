package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/role"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/go-chi/jwtauth/v5"
)

type RoleService interface {
	List(ctx context.Context) ([]role.RoleResponse, error)
	Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	Delete(ctx context.Context, name string) error
}

type RoleServiceImpl struct {
	roleRepo role.RoleRepository
}

func NewRoleService(roleRepo role.RoleRepository) RoleService {
	return &RoleServiceImpl{roleRepo: roleRepo}
}

func identityFromContext(ctx context.Context) (scope.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return scope.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return scope.FromClaims(claims)
}

// List implements RoleService. Every authenticated caller may read the
// catalog; it is needed to render forms.
func (s *RoleServiceImpl) List(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.ToResponse(r))
	}
	return responses, nil
}

// Create implements RoleService. Custom roles carry no elevated visibility;
// the scoper treats holders like operators.
func (s *RoleServiceImpl) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil || identity.Role != scope.RoleSuperAdmin {
		return role.RoleResponse{}, employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		Name:  req.Name,
		Label: req.Label,
		Fixed: false,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToResponse(created), nil
}

// Delete implements RoleService.
func (s *RoleServiceImpl) Delete(ctx context.Context, name string) error {
	identity, err := identityFromContext(ctx)
	if err != nil || identity.Role != scope.RoleSuperAdmin {
		return employee.ErrUnauthorized
	}

	existing, err := s.roleRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing.Fixed {
		return role.ErrRoleFixed
	}

	count, err := s.roleRepo.CountEmployees(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to count role assignments: %w", err)
	}
	if count > 0 {
		return role.ErrRoleInUse
	}

	if err := s.roleRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return role.ErrRoleNotFound
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}
