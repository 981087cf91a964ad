package models

import "time"

// RevocationReason records why a refresh token stopped being active.
type RevocationReason string

const (
	RevocationReasonNone          RevocationReason = "none"
	RevocationReasonRotated       RevocationReason = "rotated"
	RevocationReasonReuseDetected RevocationReason = "reuse_detected"
	RevocationReasonUserRevoked   RevocationReason = "user_revoked"
	RevocationReasonLogout        RevocationReason = "logout"
)

// RefreshTokenRecord is one generation of a refresh token. Rotations
// form an append-only chain: every successor shares FamilyID with its
// predecessor and is pointed at via ReplacedByJTI. Rows are never
// deleted; revoked generations stay behind for audit and reuse
// detection.
type RefreshTokenRecord struct {
	ID               string
	UserID           string
	TokenDigest      string
	FamilyID         string
	JTI              string
	ReplacedByJTI    *string
	RevokedAt        *time.Time
	RevocationReason RevocationReason
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

// IsExpired reports whether the record's absolute expiry has passed.
func (r *RefreshTokenRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// IsRevoked reports whether the record has been rotated or revoked.
func (r *RefreshTokenRecord) IsRevoked() bool {
	return r.RevokedAt != nil
}

// IsActive reports whether the record is the current redeemable
// generation of its family.
func (r *RefreshTokenRecord) IsActive(now time.Time) bool {
	return !r.IsRevoked() && !r.IsExpired(now)
}
