package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the outcomes the screens branch on.
var (
	// ErrNoSession indicates that no authenticated session exists for the
	// presented token (or no token was presented at all).
	ErrNoSession = errors.New("no active session")

	// ErrProfileNotFound indicates the profiles table holds no row for the
	// authenticated user's id.
	ErrProfileNotFound = errors.New("profile not found")
)
