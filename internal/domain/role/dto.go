package role

import "github.com/Harshalp4/scantrack-pro/internal/pkg/validator"

type CreateRoleRequest struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidRoleName(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be lowercase snake_case, 2-50 characters"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "label is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Fixed bool   `json:"fixed"`
}

func ToResponse(r Role) RoleResponse {
	return RoleResponse{Name: r.Name, Label: r.Label, Fixed: r.Fixed}
}
