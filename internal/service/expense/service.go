package expense

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/expense"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/storage"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService manages miscellaneous expenses and their attached
// documents.
type ExpenseService interface {
	Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error)
	Get(ctx context.Context, id string) (expense.ExpenseResponse, error)
	Update(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error)
	List(ctx context.Context, filter expense.ListExpensesFilter) ([]expense.ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseServiceImpl struct {
	expenseRepo expense.ExpenseRepository
	documents   storage.DocumentStore
}

func NewExpenseService(expenseRepo expense.ExpenseRepository, documents storage.DocumentStore) ExpenseService {
	return &ExpenseServiceImpl{
		expenseRepo: expenseRepo,
		documents:   documents,
	}
}

func identityFromContext(ctx context.Context) (scope.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return scope.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return scope.FromClaims(claims)
}

// canManage: super admins manage every expense including the unassigned
// bucket; managers only their own location's.
func canManage(identity scope.Identity, locationID *string) bool {
	switch identity.Role {
	case scope.RoleSuperAdmin:
		return true
	case scope.RoleLocationManager:
		return identity.LocationID != nil && locationID != nil &&
			*identity.LocationID == *locationID
	default:
		return false
	}
}

// Create implements ExpenseService.
func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	identity, err := identityFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if !canManage(identity, req.LocationID) {
		return expense.ExpenseResponse{}, expense.ErrUnauthorized
	}

	date, _ := validator.IsValidDate(req.Date)
	amount, _ := decimal.NewFromString(req.Amount)

	id, err := uuid.NewV7()
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to generate expense id: %w", err)
	}

	var attachmentURL *string
	if req.File != nil && req.FileHeader != nil {
		path := fmt.Sprintf("expenses/%s%s", id.String(), filepath.Ext(req.FileHeader.Filename))
		ref, err := s.documents.Put(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
		if err != nil {
			return expense.ExpenseResponse{}, fmt.Errorf("failed to store attachment: %w", err)
		}
		// The opaque reference is what gets persisted; the collaborator
		// resolves it to a URL and deletes by it later.
		attachmentURL = &ref
	}

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		ID:            id.String(),
		LocationID:    req.LocationID,
		Date:          date,
		Amount:        amount,
		Description:   req.Description,
		PaidBy:        req.PaidBy,
		PaidFrom:      req.PaidFrom,
		AttachmentURL: attachmentURL,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return expense.ToResponse(created), nil
}

// Get implements ExpenseService.
func (s *ExpenseServiceImpl) Get(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	exp, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if identity.Role == scope.RoleLocationManager && !canManage(identity, exp.LocationID) {
		// Reads fail closed without detail, matching the silent clamp
		// posture: the caller cannot learn whether the expense exists.
		return expense.ExpenseResponse{}, expense.ErrExpenseNotFound
	}
	if identity.Role != scope.RoleSuperAdmin && identity.Role != scope.RoleLocationManager {
		return expense.ExpenseResponse{}, expense.ErrExpenseNotFound
	}

	return expense.ToResponse(exp), nil
}

// Update implements ExpenseService. The attachment reference is immutable;
// replace the expense to change it.
func (s *ExpenseServiceImpl) Update(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	identity, err := identityFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	exp, err := s.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if !canManage(identity, exp.LocationID) {
		return expense.ExpenseResponse{}, expense.ErrUnauthorized
	}

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		exp.Date = date
	}
	if req.Amount != nil {
		amount, _ := decimal.NewFromString(*req.Amount)
		exp.Amount = amount
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}
	if req.PaidBy != nil {
		exp.PaidBy = req.PaidBy
	}
	if req.PaidFrom != nil {
		exp.PaidFrom = req.PaidFrom
	}

	if err := s.expenseRepo.Update(ctx, exp); err != nil {
		return expense.ExpenseResponse{}, err
	}

	return expense.ToResponse(exp), nil
}

// List implements ExpenseService with silent read clamping.
func (s *ExpenseServiceImpl) List(ctx context.Context, filter expense.ListExpensesFilter) ([]expense.ExpenseResponse, error) {
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
		return []expense.ExpenseResponse{}, nil
	}

	window, ok := resolveWindow(filter)
	if !ok {
		now := time.Now().UTC()
		window = scope.MonthWindow(now.Year(), now.Month())
	}

	expenses, err := s.expenseRepo.ListWindow(ctx, window, filter.LocationID)
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		responses = append(responses, expense.ToResponse(exp))
	}
	return responses, nil
}

// resolveWindow resolves the filter's date inputs the same way the ledger
// does: explicit range wins over (year, month).
func resolveWindow(filter expense.ListExpensesFilter) (scope.Window, bool) {
	if filter.StartDate != nil && filter.EndDate != nil {
		from, okFrom := validator.IsValidDate(*filter.StartDate)
		to, okTo := validator.IsValidDate(*filter.EndDate)
		if okFrom && okTo {
			return scope.Window{From: from, To: to}, true
		}
	}
	if filter.Year != nil && filter.Month != nil && validator.IsValidMonth(*filter.Year, *filter.Month) {
		return scope.MonthWindow(*filter.Year, time.Month(*filter.Month)), true
	}
	return scope.Window{}, false
}

// Delete implements ExpenseService. The attached document is removed through
// the document-store collaborator; a stale attachment is logged, not fatal.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	exp, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(identity, exp.LocationID) {
		return expense.ErrUnauthorized
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	if exp.AttachmentURL != nil {
		if err := s.documents.Delete(ctx, *exp.AttachmentURL); err != nil {
			slog.Warn("failed to delete expense attachment", "expense_id", id, "error", err)
		}
	}

	return nil
}
