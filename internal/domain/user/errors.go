package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrPrivilegedRoleRequired  = errors.New("privileged role required")
	ErrActingUserRequired      = errors.New("acting user required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
