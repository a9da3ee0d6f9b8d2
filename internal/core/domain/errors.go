package domain

import "errors"

var (
	// ErrUserNotFound is returned on lookups of nonexistent ids, usernames or emails.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a username or email unique constraint is violated.
	ErrUserExists = errors.New("username or email already taken")
	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("users cannot follow themselves")
	// ErrInvalidArgument covers malformed pagination and field bounds.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCredentials is returned on failed password verification.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidResetToken is returned for expired, malformed or already-used reset tokens.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrStoreUnavailable wraps transient store failures (connection loss, timeouts).
	ErrStoreUnavailable = errors.New("store unavailable")
)
