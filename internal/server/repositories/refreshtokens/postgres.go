// Package refreshtokens provides a PostgreSQL-backed repository for the
// refresh token chain used by the rotation engine.
package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/striderapp/tokenkeeper/internal/common"
	"github.com/striderapp/tokenkeeper/internal/dbx"
	"github.com/striderapp/tokenkeeper/internal/server/models"
)

const findColumns = `id, user_id, token_digest, family_id, jti, replaced_by_jti,
		revoked_at, revocation_reason, expires_at, created_at`

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new refresh token record.
func (r *PostgresRepository) Create(ctx context.Context, rec *models.RefreshTokenRecord) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token_digest, family_id, jti, revocation_reason, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.TokenDigest, rec.FamilyID, rec.JTI,
		rec.RevocationReason, rec.ExpiresAt, rec.CreatedAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// FindByDigest returns the record for the given digest, revoked rows
// included. If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) FindByDigest(ctx context.Context, digest string) (*models.RefreshTokenRecord, error) {
	query := `
		SELECT ` + findColumns + `
		FROM refresh_tokens
		WHERE token_digest = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, digest))
}

// FindByDigestForUpdate is FindByDigest holding an exclusive row lock
// until the surrounding transaction ends.
func (r *PostgresRepository) FindByDigestForUpdate(ctx context.Context, digest string) (*models.RefreshTokenRecord, error) {
	query := `
		SELECT ` + findColumns + `
		FROM refresh_tokens
		WHERE token_digest = $1
		FOR UPDATE
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, digest))
}

// MarkRotated retires the record in favor of its successor generation.
// The revoked_at IS NULL guard makes a lost race visible as no rows
// updated.
func (r *PostgresRepository) MarkRotated(ctx context.Context, id string, replacedByJTI string, now time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, revocation_reason = $3, replaced_by_jti = $4
		WHERE id = $1 AND revoked_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, now, models.RevocationReasonRotated, replacedByJTI)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Revoke marks a single still-active record revoked. Already-revoked
// records are left as they are.
func (r *PostgresRepository) Revoke(ctx context.Context, id string, reason models.RevocationReason, now time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, revocation_reason = $3
		WHERE id = $1 AND revoked_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, id, now, reason); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// RevokeFamily revokes every still-active record in the family with one
// statement, so a concurrent rotation of another member cannot observe
// a partially revoked family.
func (r *PostgresRepository) RevokeFamily(ctx context.Context, familyID string, reason models.RevocationReason, now time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, revocation_reason = $3
		WHERE family_id = $1 AND revoked_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, familyID, now, reason); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// RevokeAllForUser revokes every still-active record owned by userID.
func (r *PostgresRepository) RevokeAllForUser(ctx context.Context, userID string, reason models.RevocationReason, now time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, revocation_reason = $3
		WHERE user_id = $1 AND revoked_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, userID, now, reason); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// CountActiveForUser returns how many redeemable records userID holds.
func (r *PostgresRepository) CountActiveForUser(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `
		SELECT count(*)
		FROM refresh_tokens
		WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > $2
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.RefreshTokenRecord, error) {
	rec := &models.RefreshTokenRecord{}
	err := row.Scan(&rec.ID, &rec.UserID, &rec.TokenDigest, &rec.FamilyID, &rec.JTI,
		&rec.ReplacedByJTI, &rec.RevokedAt, &rec.RevocationReason, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}
