package domain

import "errors"

var (
	// ErrNotFound indicates that a requested record does not exist in the catalog.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidFilter indicates a filter on a field the entity does not expose.
	ErrInvalidFilter = errors.New("invalid filter parameters")
	// ErrInvalidInput indicates that the provided input data is invalid.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrMissingCredentials is returned by the login simulation when a field is empty.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials is returned when the admin credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized indicates a missing or invalid admin session token.
	ErrUnauthorized = errors.New("unauthorized")
)

// ErrCacheMiss is returned by a QueryCache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")
