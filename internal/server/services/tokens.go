// Package services contains server-side business logic. This file
// implements TokenService, which issues access/refresh token pairs,
// rotates refresh tokens with replay detection, and revokes sessions.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/striderapp/tokenkeeper/internal/common"
	"github.com/striderapp/tokenkeeper/internal/cryptox"
	"github.com/striderapp/tokenkeeper/internal/dbx"
	"github.com/striderapp/tokenkeeper/internal/logging"
	"github.com/striderapp/tokenkeeper/internal/server/auth"
	"github.com/striderapp/tokenkeeper/internal/server/config"
	"github.com/striderapp/tokenkeeper/internal/server/models"
	"github.com/striderapp/tokenkeeper/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived opaque
// refresh secret. The refresh secret appears here in raw form; it is
// never stored or logged anywhere.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService provides the refresh token protocol:
//   - IssuePair: start a new session (new token family)
//   - Refresh: rotate a presented refresh token, detecting replays
//   - Revoke / RevokeAllForUser: logout and account-security revocation
//
// Every refresh token is one generation in an append-only family chain.
// Rotation retires the presented generation and creates its successor
// in the same family. A retired generation presented again within the
// grace window is treated as a benign duplicate request; past the
// window it is treated as theft and the whole family is revoked.
type TokenService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	rotationGraceWindow          time.Duration
	now                          func() time.Time
}

// NewTokenService constructs a TokenService using repositories and
// server config.
func NewTokenService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *TokenService {
	return &TokenService{
		db:                           db,
		repomanager:                  m,
		logger:                       l.With("module", "token_service"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		rotationGraceWindow:          cfg.RotationGraceWindowDuration,
		now:                          time.Now,
	}
}

// IssuePair starts a new token family for the given verified user and
// returns its first access/refresh pair. One row is persisted; the raw
// refresh secret is returned to the caller and forgotten.
func (s *TokenService) IssuePair(ctx context.Context, userID string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	familyID := uuid.NewString()
	jti := uuid.NewString()
	pair, err := s.mintPair(ctx, s.db, user.ID, familyID, jti)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "issued token pair", "user_id", user.ID, "family_id", familyID, "jti", jti)
	return pair, nil
}

// Refresh validates a raw refresh secret and rotates it, returning the
// successor pair and the owning user.
//
// The candidate row is locked for update inside a single transaction,
// so two requests racing on the same secret serialize: the loser
// re-reads an already-rotated record and lands in the replay branch
// instead of double-rotating.
//
// Outcomes:
//   - common.ErrTokenInvalid: blank or unknown secret
//   - common.ErrTokenExpired: known but past its absolute expiry
//   - common.ErrTokenAlreadyRefreshed: retired within the grace window,
//     presumed duplicate request; no side effects
//   - common.ErrTokenReused: retired beyond the grace window, presumed
//     theft; every generation of the family is revoked
//
// Replay outcomes commit their side effects; only storage failures roll
// the transaction back.
func (s *TokenService) Refresh(ctx context.Context, rawToken string) (*TokenPair, *models.User, error) {
	if rawToken == "" {
		return nil, nil, common.ErrTokenInvalid
	}
	digest := cryptox.DigestSecret(rawToken)

	var (
		pair    *TokenPair
		user    *models.User
		outcome error
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		rec, err := repo.FindByDigestForUpdate(ctx, digest)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				outcome = common.ErrTokenInvalid
				return nil
			}
			return fmt.Errorf("error searching refresh token: %w", err)
		}

		now := s.now()
		if rec.IsExpired(now) {
			outcome = common.ErrTokenExpired
			return nil
		}

		if !rec.IsRevoked() {
			pair, user, err = s.rotate(ctx, tx, rec, now)
			if err != nil {
				// Owner row gone means the token can never be redeemed.
				if errors.Is(err, common.ErrorNotFound) {
					outcome = common.ErrTokenInvalid
					return nil
				}
				return err
			}
			return nil
		}

		// This exact secret has been redeemed or revoked before.
		// Wall-clock distance to that event decides benign duplicate
		// vs. theft.
		elapsed := now.Sub(*rec.RevokedAt)
		if elapsed <= s.rotationGraceWindow {
			outcome = common.ErrTokenAlreadyRefreshed
			return nil
		}

		if err := repo.RevokeFamily(ctx, rec.FamilyID, models.RevocationReasonReuseDetected, now); err != nil {
			return fmt.Errorf("error revoking token family: %w", err)
		}
		s.logger.Warn(ctx, "refresh token reuse detected, family revoked",
			"user_id", rec.UserID, "family_id", rec.FamilyID, "jti", rec.JTI,
			"digest_prefix", cryptox.DigestPrefix(rec.TokenDigest),
			"retired_for", elapsed.String())
		outcome = common.ErrTokenReused
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if outcome != nil {
		return nil, nil, outcome
	}
	return pair, user, nil
}

// rotate retires rec in favor of a fresh generation in the same family.
// Runs on the transaction that holds rec's row lock.
func (s *TokenService) rotate(ctx context.Context, tx dbx.DBTX, rec *models.RefreshTokenRecord, now time.Time) (*TokenPair, *models.User, error) {
	user, err := s.repomanager.Users(tx).GetByID(ctx, rec.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading token owner: %w", err)
	}

	successorJTI := uuid.NewString()
	if err := s.repomanager.RefreshTokens(tx).MarkRotated(ctx, rec.ID, successorJTI, now); err != nil {
		return nil, nil, fmt.Errorf("error retiring refresh token: %w", err)
	}

	pair, err := s.mintPair(ctx, tx, rec.UserID, rec.FamilyID, successorJTI)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info(ctx, "rotated refresh token",
		"user_id", rec.UserID, "family_id", rec.FamilyID,
		"jti", rec.JTI, "replaced_by_jti", successorJTI)
	return pair, user, nil
}

// Revoke marks the token matching rawToken revoked with reason logout.
// Blank or unknown input is a silent no-op: logout must never fail on
// an already-invalid token.
func (s *TokenService) Revoke(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	repo := s.repomanager.RefreshTokens(s.db)
	rec, err := repo.FindByDigest(ctx, cryptox.DigestSecret(rawToken))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error searching refresh token: %w", err)
	}

	if err := repo.Revoke(ctx, rec.ID, models.RevocationReasonLogout, s.now()); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	s.logger.Info(ctx, "revoked refresh token", "user_id", rec.UserID, "family_id", rec.FamilyID, "jti", rec.JTI)
	return nil
}

// RevokeAllForUser revokes every active refresh token owned by userID,
// ending all of the user's sessions. Idempotent.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID string) error {
	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.RevokeAllForUser(ctx, userID, models.RevocationReasonUserRevoked, s.now()); err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}

	s.logger.Info(ctx, "revoked all refresh tokens for user", "user_id", userID)
	return nil
}

// ActiveSessionCount reports how many redeemable refresh tokens userID
// currently holds (one per device/session).
func (s *TokenService) ActiveSessionCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repomanager.RefreshTokens(s.db).CountActiveForUser(ctx, userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("error counting active tokens: %w", err)
	}
	return count, nil
}

// mintPair creates one new ACTIVE generation plus its paired access
// token. The access token carries the same jti as the stored record.
func (s *TokenService) mintPair(ctx context.Context, db dbx.DBTX, userID, familyID, jti string) (*TokenPair, error) {
	secret, err := cryptox.GenerateSecret()
	if err != nil {
		return nil, common.ErrorInternal
	}

	access, err := auth.GenerateToken(userID, jti, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := s.now()
	rec := &models.RefreshTokenRecord{
		ID:               uuid.NewString(),
		UserID:           userID,
		TokenDigest:      cryptox.DigestSecret(secret),
		FamilyID:         familyID,
		JTI:              jti,
		RevocationReason: models.RevocationReasonNone,
		ExpiresAt:        now.Add(s.refreshTokenValidityDuration),
		CreatedAt:        now,
	}
	if err := s.repomanager.RefreshTokens(db).Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: secret}, nil
}
