package user

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("name, email and password are required")
	ErrInvalidRole   = errors.New("role must be buyer or seller")

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid email or password")

	// -- Resource State --
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
