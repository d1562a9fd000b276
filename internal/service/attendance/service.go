package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// LedgerService is the attendance ledger boundary: single and bulk upserts
// plus scoped listings.
type LedgerService interface {
	Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error)
	RecordBulk(ctx context.Context, req attendance.BulkRecordRequest) (attendance.BulkRecordResponse, error)
	List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error)
}

type LedgerServiceImpl struct {
	ledgerRepo   attendance.LedgerRepository
	employeeRepo employee.EmployeeRepository
}

func NewLedgerService(ledgerRepo attendance.LedgerRepository, employeeRepo employee.EmployeeRepository) LedgerService {
	return &LedgerServiceImpl{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
	}
}

func identityFromContext(ctx context.Context) (scope.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return scope.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return scope.FromClaims(claims)
}

// normalizeOutput nulls the output count for any non-present status, even
// when one was supplied.
func normalizeOutput(status attendance.Status, output *int) *int {
	if status != attendance.StatusPresent {
		return nil
	}
	return output
}

// canRecordFor checks the write-path authorization: unlike reads, writes
// outside the caller's scope are refused loudly.
func canRecordFor(identity scope.Identity, target employee.Employee) bool {
	switch identity.Role {
	case scope.RoleSuperAdmin:
		return true
	case scope.RoleLocationManager:
		return identity.LocationID != nil && target.LocationID != nil &&
			*identity.LocationID == *target.LocationID
	default:
		return identity.EmployeeID == target.ID
	}
}

// Record implements LedgerService. Calling it twice with the same
// (employee, date) overwrites the earlier row; it never creates a duplicate.
func (s *LedgerServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	identity, err := identityFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	target, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !canRecordFor(identity, target) {
		return attendance.RecordResponse{}, employee.ErrUnauthorized
	}

	date, _ := validator.IsValidDate(req.Date)
	status := attendance.Status(req.Status)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to generate record id: %w", err)
	}

	rec, err := s.ledgerRepo.Upsert(ctx, attendance.Record{
		ID:          id.String(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Status:      status,
		OutputCount: normalizeOutput(status, req.OutputCount),
		Note:        req.Note,
		RecordedBy:  identity.EmployeeID,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec.EmployeeName = &target.FullName
	return attendance.ToResponse(rec), nil
}

// RecordBulk implements LedgerService. Rows are upserted independently: each
// row is atomic on its own, the batch as a whole is not, and one failed row
// never blocks or rolls back the others.
func (s *LedgerServiceImpl) RecordBulk(ctx context.Context, req attendance.BulkRecordRequest) (attendance.BulkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkRecordResponse{}, err
	}

	identity, err := identityFromContext(ctx)
	if err != nil {
		return attendance.BulkRecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	var resp attendance.BulkRecordResponse
	for _, entry := range req.Entries {
		if err := s.recordOne(ctx, identity, date, entry); err != nil {
			resp.Failed = append(resp.Failed, attendance.BulkRowError{
				EmployeeID: entry.EmployeeID,
				Message:    err.Error(),
			})
			continue
		}
		resp.Saved++
	}

	if len(resp.Failed) > 0 {
		slog.Warn("bulk attendance entry partially failed",
			"date", req.Date, "saved", resp.Saved, "failed", len(resp.Failed))
	}

	return resp, nil
}

func (s *LedgerServiceImpl) recordOne(ctx context.Context, identity scope.Identity, date time.Time, entry attendance.BulkRecordRow) error {
	status := attendance.Status(entry.Status)
	if !status.Valid() {
		return attendance.ErrInvalidStatus
	}
	if !validator.IsValidUUID(entry.EmployeeID) {
		return attendance.ErrUnknownEmployee
	}

	target, err := s.employeeRepo.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		return attendance.ErrUnknownEmployee
	}
	if !canRecordFor(identity, target) {
		return employee.ErrUnauthorized
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate record id: %w", err)
	}

	_, err = s.ledgerRepo.Upsert(ctx, attendance.Record{
		ID:          id.String(),
		EmployeeID:  entry.EmployeeID,
		Date:        date,
		Status:      status,
		OutputCount: normalizeOutput(status, entry.OutputCount),
		Note:        entry.Note,
		RecordedBy:  identity.EmployeeID,
	})
	return err
}

// List implements LedgerService. The filter's explicit date range wins over
// a (year, month) pair; with neither, the current month is used.
func (s *LedgerServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	window, ok := filter.ResolveWindow()
	if !ok {
		now := time.Now().UTC()
		window = scope.MonthWindow(now.Year(), now.Month())
	}

	sc := scope.Clamp(identity, scope.Scope{
		Window:     window,
		LocationID: filter.LocationID,
		EmployeeID: filter.EmployeeID,
	})

	records, err := s.ledgerRepo.ListWindow(ctx, sc)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}
