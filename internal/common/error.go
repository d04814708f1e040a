// Package common defines shared constants and sentinel errors used across
// the account core and the terminal client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Signup validation errors (missing/malformed fields, short password).
	ErrorValidation = errors.New("validation error")

	// Signup rejected because the email already keys a record.
	ErrorEmailExists = errors.New("email already registered")

	// Signin rejected: record exists but the password does not match.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Storage read/write failed. The in-memory state did not change and
	// the operation may be retried as-is.
	ErrorPersistence = errors.New("persistence failure")
)
