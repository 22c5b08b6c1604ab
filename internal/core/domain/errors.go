package domain

import "errors"

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrDuplicateEmail       = errors.New("duplicate email")
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
)
