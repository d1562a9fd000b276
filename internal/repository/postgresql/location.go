package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements location.LocationRepository.
func (r *locationRepository) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (id, name, address, client_rate, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.ID, loc.Name, loc.Address, loc.ClientRate, loc.Active,
	).Scan(&loc.CreatedAt, &loc.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return location.Location{}, location.ErrLocationNameExists
		}
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return loc, nil
}

// GetByID implements location.LocationRepository.
func (r *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, client_rate, active, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var loc location.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.ClientRate, &loc.Active,
		&loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// Update implements location.LocationRepository.
func (r *locationRepository) Update(ctx context.Context, loc location.Location) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations SET
			name        = $1,
			address     = $2,
			client_rate = $3,
			updated_at  = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, loc.Name, loc.Address, loc.ClientRate, loc.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.ErrLocationNotFound
		}
		if isUniqueViolation(err) {
			return location.ErrLocationNameExists
		}
		return fmt.Errorf("failed to update location: %w", err)
	}

	return nil
}

// List implements location.LocationRepository.
func (r *locationRepository) List(ctx context.Context, activeOnly bool) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, client_rate, active, created_at, updated_at
		FROM locations
	`
	if activeOnly {
		query += " WHERE active = TRUE"
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		var loc location.Location
		err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address, &loc.ClientRate, &loc.Active,
			&loc.CreatedAt, &loc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// SetActive implements location.LocationRepository.
func (r *locationRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE locations SET active = $1, updated_at = NOW() WHERE id = $2`,
		active, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set location active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

// DependentCounts implements location.LocationRepository. One round trip for
// all three categories; attendance is counted via dependent employees.
func (r *locationRepository) DependentCounts(ctx context.Context, id string) (location.DependentCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE location_id = $1),
			(SELECT COUNT(*) FROM expenses WHERE location_id = $1),
			(SELECT COUNT(*)
			 FROM attendance_records r
			 JOIN employees e ON e.id = r.employee_id
			 WHERE e.location_id = $1)
	`

	var counts location.DependentCounts
	err := q.QueryRow(ctx, query, id).Scan(&counts.Employees, &counts.Expenses, &counts.Attendance)
	if err != nil {
		return location.DependentCounts{}, fmt.Errorf("failed to count location dependents: %w", err)
	}

	return counts, nil
}

// Delete implements location.LocationRepository.
func (r *locationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}
