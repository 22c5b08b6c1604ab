package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func ValidUserRoles() []UserRole {
	return []UserRole{UserRoleAdmin, UserRoleUser}
}

func IsValidUserRole(role UserRole) bool {
	for _, r := range ValidUserRoles() {
		if r == role {
			return true
		}
	}
	return false
}

const (
	NameMinLen = 2
	NameMaxLen = 100
)

func isValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	n := utf8.RuneCountInString(name)
	return n >= NameMinLen && n <= NameMaxLen
}

// Intentionally loose: one @, no whitespace, a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type User struct {
	ID        int64
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserInput struct {
	ID    int64
	Name  string
	Email string
	Role  *UserRole
}

// UpdateUserInput carries a partial update; nil means absent.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *UserRole
}

func NewUser(input CreateUserInput) (*User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingRequiredField)
	}
	if !IsValidEmail(input.Email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmailFormat, input.Email)
	}

	role := UserRoleUser
	if input.Role != nil {
		if !IsValidUserRole(*input.Role) {
			return nil, fmt.Errorf("%w: role %q", ErrInvalidEnumValue, *input.Role)
		}
		role = *input.Role
	}

	now := time.Now()
	return &User{
		ID:        input.ID,
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyUpdate mirrors the task update policy: invalid fields are dropped,
// valid ones applied, UpdatedAt always refreshed. Email uniqueness is a
// collection concern and is checked by the repository before this runs.
func (u *User) ApplyUpdate(input UpdateUserInput) {
	if input.Name != nil && isValidName(*input.Name) {
		u.Name = *input.Name
	}
	if input.Email != nil && IsValidEmail(*input.Email) {
		u.Email = *input.Email
	}
	if input.Role != nil && IsValidUserRole(*input.Role) {
		u.Role = *input.Role
	}
	u.UpdatedAt = time.Now()
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
