// Package users declares the repository contract for the identities
// that own refresh token families.
package users

import (
	"context"

	"github.com/striderapp/tokenkeeper/internal/server/models"
)

// Repository defines lookups over stored users.
type Repository interface {
	// GetByID returns the user with the given id. Implementations
	// return a not-found error when the user is absent.
	GetByID(ctx context.Context, userID string) (*models.User, error)
}
