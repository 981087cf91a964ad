// Package refreshtokens declares the server-side repository contract
// for the persisted refresh token chain.
package refreshtokens

import (
	"context"
	"time"

	"github.com/striderapp/tokenkeeper/internal/server/models"
)

// Repository defines operations over stored refresh token records.
// Records are never deleted: revocation operations only set revoked_at,
// revocation_reason, and replaced_by_jti, so a digest lookup still
// finds retired generations for replay detection.
type Repository interface {
	// Create inserts a new record. The record's digest and jti must be
	// unique across all generations ever stored.
	Create(ctx context.Context, rec *models.RefreshTokenRecord) error

	// FindByDigest looks up a record by its secret digest.
	// Implementations return a not-found error when the digest is
	// unknown.
	FindByDigest(ctx context.Context, digest string) (*models.RefreshTokenRecord, error)

	// FindByDigestForUpdate is FindByDigest with an exclusive row lock,
	// serializing concurrent refresh attempts against the same token.
	// Only meaningful when the repository is bound to a transaction.
	FindByDigestForUpdate(ctx context.Context, digest string) (*models.RefreshTokenRecord, error)

	// MarkRotated retires a record in favor of its successor: sets
	// revoked_at, reason 'rotated', and replaced_by_jti.
	MarkRotated(ctx context.Context, id string, replacedByJTI string, now time.Time) error

	// Revoke marks a single still-active record revoked with the given
	// reason. Revoking an already-revoked record is a no-op.
	Revoke(ctx context.Context, id string, reason models.RevocationReason, now time.Time) error

	// RevokeFamily revokes every still-active record in a family in one
	// statement. Reasons already written by earlier revocations are
	// preserved.
	RevokeFamily(ctx context.Context, familyID string, reason models.RevocationReason, now time.Time) error

	// RevokeAllForUser revokes every still-active record owned by the
	// user. Other users' records are untouched.
	RevokeAllForUser(ctx context.Context, userID string, reason models.RevocationReason, now time.Time) error

	// CountActiveForUser returns the number of redeemable records the
	// user currently holds (one per device/session).
	CountActiveForUser(ctx context.Context, userID string, now time.Time) (int, error)
}
