package employee

import (
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName      string  `json:"full_name"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	LocationID    *string `json:"location_id"`
	Role          string  `json:"role"`
	PayType       string  `json:"pay_type"`
	CustomRate    *string `json:"custom_rate"`
	MonthlySalary *string `json:"monthly_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 characters (letters, digits, . _ -)"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if !PayType(r.PayType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "pay_type must be piece_rate or fixed_monthly"})
	}
	if r.LocationID != nil && !validator.IsValidUUID(*r.LocationID) {
		errs = append(errs, validator.ValidationError{Field: "location_id", Message: "location_id must be a valid UUID"})
	}
	if r.CustomRate != nil {
		if _, ok := validator.IsValidRate(*r.CustomRate); !ok {
			errs = append(errs, validator.ValidationError{Field: "custom_rate", Message: "custom_rate must be a non-negative decimal"})
		}
	}
	if PayType(r.PayType) == PayTypeFixedMonthly {
		if r.MonthlySalary == nil {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary is required for fixed_monthly employees"})
		} else if _, ok := validator.IsValidAmount(*r.MonthlySalary); !ok {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must be a positive decimal"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	FullName      *string `json:"full_name"`
	LocationID    *string `json:"location_id"`
	Role          *string `json:"role"`
	PayType       *string `json:"pay_type"`
	CustomRate    *string `json:"custom_rate"`
	MonthlySalary *string `json:"monthly_salary"`
	Password      *string `json:"password"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name cannot be empty"})
	}
	if r.PayType != nil && !PayType(*r.PayType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "pay_type must be piece_rate or fixed_monthly"})
	}
	if r.LocationID != nil && *r.LocationID != "" && !validator.IsValidUUID(*r.LocationID) {
		errs = append(errs, validator.ValidationError{Field: "location_id", Message: "location_id must be a valid UUID"})
	}
	if r.CustomRate != nil && *r.CustomRate != "" {
		if _, ok := validator.IsValidRate(*r.CustomRate); !ok {
			errs = append(errs, validator.ValidationError{Field: "custom_rate", Message: "custom_rate must be a non-negative decimal"})
		}
	}
	if r.MonthlySalary != nil && *r.MonthlySalary != "" {
		if _, ok := validator.IsValidAmount(*r.MonthlySalary); !ok {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must be a positive decimal"})
		}
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string           `json:"id"`
	FullName      string           `json:"full_name"`
	Username      string           `json:"username"`
	LocationID    *string          `json:"location_id"`
	LocationName  *string          `json:"location_name,omitempty"`
	Role          string           `json:"role"`
	PayType       PayType          `json:"pay_type"`
	CustomRate    *decimal.Decimal `json:"custom_rate,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	Active        bool             `json:"active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FullName:      e.FullName,
		Username:      e.Username,
		LocationID:    e.LocationID,
		LocationName:  e.LocationName,
		Role:          e.Role,
		PayType:       e.PayType,
		CustomRate:    e.CustomRate,
		MonthlySalary: e.MonthlySalary,
		Active:        e.Active,
	}
}

type ListEmployeesFilter struct {
	LocationID *string
	Role       *string
	ActiveOnly bool
}
