package custom_errors

import "errors"

var (
	// Lookup failures.
	ErrPostNotFound  = errors.New("post not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")

	// Input and credential failures.
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Like toggle guard outcomes. The conditional update applied zero rows
	// because the membership predicate did not hold at write time.
	ErrAlreadyLiked = errors.New("user already liked post")
	ErrNotLiked     = errors.New("user has not liked post")
	ErrLikeConflict = errors.New("like toggle conflict")

	// Infrastructure failures.
	ErrDatabaseQuery   = errors.New("database query error")
	ErrDatabaseScan    = errors.New("database scan error")
	ErrPasswordHashing = errors.New("password hashing error")
	ErrFileStorage     = errors.New("file storage error")
	ErrCacheMiss       = errors.New("cache miss")
)
