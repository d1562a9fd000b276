package expense

import (
	"mime/multipart"

	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	LocationID  *string `json:"location_id"`
	Date        string  `json:"date"`
	Amount      string  `json:"amount"`
	Description string  `json:"description"`
	PaidBy      *string `json:"paid_by"`
	PaidFrom    *string `json:"paid_from"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidAmount(r.Amount); !ok {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive decimal"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.LocationID != nil && !validator.IsValidUUID(*r.LocationID) {
		errs = append(errs, validator.ValidationError{Field: "location_id", Message: "location_id must be a valid UUID"})
	}
	if r.FileHeader != nil && r.FileHeader.Size > 10<<20 {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "attachment size must not exceed 10MB"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExpenseRequest struct {
	ID          string  `json:"-"`
	Date        *string `json:"date"`
	Amount      *string `json:"amount"`
	Description *string `json:"description"`
	PaidBy      *string `json:"paid_by"`
	PaidFrom    *string `json:"paid_from"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.Amount != nil {
		if _, ok := validator.IsValidAmount(*r.Amount); !ok {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive decimal"})
		}
	}
	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID            string          `json:"id"`
	LocationID    *string         `json:"location_id,omitempty"`
	LocationName  *string         `json:"location_name,omitempty"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaidBy        *string         `json:"paid_by,omitempty"`
	PaidFrom      *string         `json:"paid_from,omitempty"`
	AttachmentURL *string         `json:"attachment_url,omitempty"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		LocationID:    e.LocationID,
		LocationName:  e.LocationName,
		Date:          e.Date.Format("2006-01-02"),
		Amount:        e.Amount,
		Description:   e.Description,
		PaidBy:        e.PaidBy,
		PaidFrom:      e.PaidFrom,
		AttachmentURL: e.AttachmentURL,
	}
}

type ListExpensesFilter struct {
	StartDate  *string
	EndDate    *string
	Year       *int
	Month      *int
	LocationID *string
}
