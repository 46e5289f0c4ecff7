// Package auth issues and parses session tokens. Tokens are HS256 JWTs
// carrying the owning username and an expiration instant; the server also
// persists every issued token so the session table stays the source of truth
// for the audit trail.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okarpov/datafreezer/internal/common"
)

// Claims is the session token claim set: the registered claims plus the
// owning username.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken mints a signed session token for username expiring at
// now + validityDuration, and returns the token with its expiration instant.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// GetUsernameFromToken verifies the signature and expiry of tokenString and
// returns the owning username. Expired tokens yield common.ErrTokenExpired;
// any other verification failure yields common.ErrInvalidToken.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
