package employee

import (
	"context"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/role"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService manages employee records and their compensation policies.
type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	roleRepo     role.RoleRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, roleRepo role.RoleRepository) EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
	}
}

func identityFromContext(ctx context.Context) (scope.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return scope.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return scope.FromClaims(claims)
}

// canManage is the write-path check: managers may only touch employees of
// their own location, and nobody below super_admin may hand out the
// super_admin role.
func canManage(identity scope.Identity, targetLocation *string, targetRole string) bool {
	switch identity.Role {
	case scope.RoleSuperAdmin:
		return true
	case scope.RoleLocationManager:
		if targetRole == scope.RoleSuperAdmin {
			return false
		}
		return identity.LocationID != nil && targetLocation != nil &&
			*identity.LocationID == *targetLocation
	default:
		return false
	}
}

func parseRate(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", *s, err)
	}
	return &d, nil
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	identity, err := identityFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !canManage(identity, req.LocationID, req.Role) {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}

	if _, err := s.roleRepo.GetByName(ctx, req.Role); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	customRate, err := parseRate(req.CustomRate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	monthlySalary, err := parseRate(req.MonthlySalary)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:            id.String(),
		FullName:      req.FullName,
		Username:      req.Username,
		PasswordHash:  string(hash),
		LocationID:    req.LocationID,
		Role:          req.Role,
		PayType:       employee.PayType(req.PayType),
		CustomRate:    customRate,
		MonthlySalary: monthlySalary,
		Active:        true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements EmployeeService. Reads clamp silently: a non-privileged
// caller asking for someone else gets their own record.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !scope.IsPrivileged(identity.Role) {
		id = identity.EmployeeID
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if identity.Role == scope.RoleLocationManager {
		if emp.LocationID == nil || identity.LocationID == nil || *emp.LocationID != *identity.LocationID {
			// Out-of-location read clamps to self, same as operators.
			emp, err = s.employeeRepo.GetByID(ctx, identity.EmployeeID)
			if err != nil {
				return employee.EmployeeResponse{}, err
			}
		}
	}

	return employee.ToResponse(emp), nil
}

// Update implements EmployeeService. The compensation policy is replaced
// wholesale; no history is retained.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	identity, err := identityFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !canManage(identity, emp.LocationID, emp.Role) {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.LocationID != nil {
		if *req.LocationID == "" {
			emp.LocationID = nil
		} else {
			emp.LocationID = req.LocationID
		}
	}
	if req.Role != nil {
		if !canManage(identity, emp.LocationID, *req.Role) {
			return employee.EmployeeResponse{}, employee.ErrUnauthorized
		}
		if _, err := s.roleRepo.GetByName(ctx, *req.Role); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.Role = *req.Role
	}
	if req.PayType != nil {
		emp.PayType = employee.PayType(*req.PayType)
	}
	if req.CustomRate != nil {
		rate, err := parseRate(req.CustomRate)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.CustomRate = rate
	}
	if req.MonthlySalary != nil {
		salary, err := parseRate(req.MonthlySalary)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.MonthlySalary = salary
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// List implements EmployeeService with silent read clamping.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch identity.Role {
	case scope.RoleSuperAdmin:
		// unrestricted
	case scope.RoleLocationManager:
		filter.LocationID = identity.LocationID
	default:
		emp, err := s.employeeRepo.GetByID(ctx, identity.EmployeeID)
		if err != nil {
			return nil, err
		}
		return []employee.EmployeeResponse{employee.ToResponse(emp)}, nil
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) setActive(ctx context.Context, id string, active bool) error {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(identity, emp.LocationID, emp.Role) {
		return employee.ErrUnauthorized
	}
	if emp.Active == active {
		if active {
			return employee.ErrEmployeeAlreadyActive
		}
		return employee.ErrEmployeeAlreadyInactive
	}

	return s.employeeRepo.SetActive(ctx, id, active)
}

// Deactivate implements EmployeeService. Deactivation is always safe and
// reversible; no dependent-record guard applies.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Reactivate implements EmployeeService.
func (s *EmployeeServiceImpl) Reactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

// Delete implements EmployeeService. Physical removal is only allowed when
// no attendance records depend on the employee.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return err
	}
	if identity.EmployeeID == id {
		return employee.ErrCannotDeleteSelf
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(identity, emp.LocationID, emp.Role) {
		return employee.ErrUnauthorized
	}

	count, err := s.employeeRepo.CountAttendance(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return employee.ErrEmployeeHasRecords
	}

	return s.employeeRepo.Delete(ctx, id)
}
