package custom_errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request body")
	ErrUsernameRequired = errors.New("username is required")
	ErrContentRequired  = errors.New("post content is required")
	ErrContentTooLong   = errors.New("post content must be 50 characters or fewer")
	ErrUnauthenticated  = errors.New("login required")
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseInit  = errors.New("database initialization failed")
	ErrCacheMiss     = errors.New("cache miss")
)

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrUsernameRequired) ||
		errors.Is(err, ErrContentRequired) ||
		errors.Is(err, ErrContentTooLong)
}
