package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidStatus  = errors.New("status must be present, absent, file_close or holiday")
	ErrUnknownEmployee = errors.New("attendance entry references an unknown employee")
)
