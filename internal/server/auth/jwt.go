// Package auth mints and parses the short-lived access tokens paired
// with stored refresh tokens. Access tokens are stateless: any verifier
// holding the signing secret can validate them without consulting the
// store.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/striderapp/tokenkeeper/internal/common"
)

// Claims is the registered claim set used for access tokens. Subject
// carries the user id; ID carries the jti shared with the paired
// refresh token record, so the two halves of a pair can be correlated
// in diagnostics.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256-signed access token for userID with the
// given jti and validity.
func GenerateToken(userID string, jti string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns the embedded user id and
// jti. Any signature, expiry, or format problem yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (userID string, jti string, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", "", common.ErrInvalidToken
	}

	return claims.Subject, claims.ID, nil
}
