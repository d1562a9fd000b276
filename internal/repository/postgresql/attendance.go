package postgresql

import (
	"context"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/attendance"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.LedgerRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.LedgerRepository. The (employee_id, date)
// natural key is serialized by the storage engine's conflict resolution in a
// single atomic statement; there is no read-then-write window.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, status, output_count, note, recorded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status       = EXCLUDED.status,
			output_count = EXCLUDED.output_count,
			note         = EXCLUDED.note,
			recorded_by  = EXCLUDED.recorded_by,
			updated_at   = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		rec.Status,
		rec.OutputCount,
		rec.Note,
		rec.RecordedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// ListWindow implements attendance.LedgerRepository.
func (a *attendanceRepository) ListWindow(ctx context.Context, sc scope.Scope) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "r.date >= $1 AND r.date <= $2"
	args := []interface{}{sc.Window.From, sc.Window.To}
	argIdx := 3

	if sc.LocationID != nil && *sc.LocationID != "" {
		baseWhere += fmt.Sprintf(" AND e.location_id = $%d", argIdx)
		args = append(args, *sc.LocationID)
		argIdx++
	}
	if sc.EmployeeID != nil && *sc.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *sc.EmployeeID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			r.id, r.employee_id, r.date, r.status, r.output_count, r.note,
			r.recorded_by, r.created_at, r.updated_at,
			e.full_name AS employee_name,
			e.role AS employee_role,
			e.location_id
		FROM attendance_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY r.date DESC, e.full_name ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.OutputCount, &rec.Note,
			&rec.RecordedBy, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeRole, &rec.LocationID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountByLocation implements attendance.LedgerRepository.
func (a *attendanceRepository) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE e.location_id = $1
	`

	var count int64
	if err := q.QueryRow(ctx, query, locationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance records by location: %w", err)
	}

	return count, nil
}
