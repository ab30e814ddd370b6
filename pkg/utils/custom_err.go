package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrNotFound      = errors.New("record not found")
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is wrapped with a resource-specific message by the
	// service layer before it reaches the response writer.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrAccessDenied covers every package-access verification failure:
	// wrong key, wrong email, expired, deactivated or absent grant. Callers
	// must not be able to tell which field was wrong.
	ErrAccessDenied = errors.New("invalid or expired access")

	ErrForbidden = errors.New("forbidden")

	// ErrKeyGenerationExhausted is returned when the access key generator
	// keeps colliding with existing keys past its retry bound.
	ErrKeyGenerationExhausted = errors.New("access key generation exhausted")

	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
