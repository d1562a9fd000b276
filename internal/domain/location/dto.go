package location

import (
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLocationRequest struct {
	Name       string  `json:"name"`
	Address    *string `json:"address"`
	ClientRate *string `json:"client_rate"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.ClientRate != nil {
		if _, ok := validator.IsValidRate(*r.ClientRate); !ok {
			errs = append(errs, validator.ValidationError{Field: "client_rate", Message: "client_rate must be a non-negative decimal"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLocationRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	ClientRate *string `json:"client_rate"`
}

func (r *UpdateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.ClientRate != nil && *r.ClientRate != "" {
		if _, ok := validator.IsValidRate(*r.ClientRate); !ok {
			errs = append(errs, validator.ValidationError{Field: "client_rate", Message: "client_rate must be a non-negative decimal"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LocationResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Address    *string          `json:"address,omitempty"`
	ClientRate *decimal.Decimal `json:"client_rate,omitempty"`
	Active     bool             `json:"active"`
}

func ToResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:         l.ID,
		Name:       l.Name,
		Address:    l.Address,
		ClientRate: l.ClientRate,
		Active:     l.Active,
	}
}
