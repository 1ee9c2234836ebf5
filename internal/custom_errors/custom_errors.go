package custom_errors

import "errors"

var (
	// Account errors.
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Post errors.
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("operation not allowed for this user")

	// Input errors.
	ErrValidationFailed = errors.New("validation failed")

	// Database errors.
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrNoUpdateRows  = errors.New("no fields to update")
)
