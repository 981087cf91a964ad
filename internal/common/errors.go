// Package common defines shared constants and sentinel errors used across
// tokenkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (malformed, badly signed, or expired access token).
	ErrInvalidToken = errors.New("invalid token")

	// Refresh flow outcomes. All four are expected, user-triggerable
	// failures rather than defects; the transport maps each one to a
	// distinct response so clients can tell a benign duplicate from a
	// forced re-login.
	ErrTokenInvalid          = errors.New("refresh token invalid")
	ErrTokenExpired          = errors.New("refresh token expired")
	ErrTokenAlreadyRefreshed = errors.New("refresh token already refreshed")
	ErrTokenReused           = errors.New("refresh token reuse detected")
)
