package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/role"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type roleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepository{db: db}
}

// List implements role.RoleRepository. Fixed roles sort first.
func (r *roleRepository) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT name, label, fixed, created_at
		FROM roles
		ORDER BY fixed DESC, name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.Name, &rl.Label, &rl.Fixed, &rl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, rl)
	}

	return roles, rows.Err()
}

// GetByName implements role.RoleRepository.
func (r *roleRepository) GetByName(ctx context.Context, name string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var rl role.Role
	err := q.QueryRow(ctx,
		`SELECT name, label, fixed, created_at FROM roles WHERE name = $1`, name,
	).Scan(&rl.Name, &rl.Label, &rl.Fixed, &rl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role by name: %w", err)
	}

	return rl, nil
}

// Create implements role.RoleRepository.
func (r *roleRepository) Create(ctx context.Context, rl role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO roles (name, label, fixed) VALUES ($1, $2, $3) RETURNING created_at`,
		rl.Name, rl.Label, rl.Fixed,
	).Scan(&rl.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return role.Role{}, role.ErrRoleExists
		}
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return rl, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepository) Delete(ctx context.Context, name string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE name = $1 AND fixed = FALSE`, name)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// CountEmployees implements role.RoleRepository.
func (r *roleRepository) CountEmployees(ctx context.Context, name string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE role = $1`, name,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by role: %w", err)
	}

	return count, nil
}
