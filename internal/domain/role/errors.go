package role

import "errors"

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrRoleExists   = errors.New("role already exists")
	ErrRoleFixed    = errors.New("fixed roles cannot be deleted")
	ErrRoleInUse    = errors.New("role is still assigned to employees")
)
