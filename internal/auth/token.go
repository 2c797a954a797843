// Package auth issues and verifies the signed bearer tokens that carry a
// user's identity claim between requests.
package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"murmur/internal/apperror"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 30 * time.Minute

// Claims is the identity claim embedded in a token.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// UserID returns the subject of the claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Sign issues an HS256 token binding the user's id and username.
func Sign(userID, username string, secret []byte, now time.Time) (string, int64, error) {
	expiresAt := now.Add(TokenLifetime).Unix()
	claims := &Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", 0, apperror.Internal(err, "could not generate token")
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded claim.
// Any failure, including expiry, comes back as UnauthenticatedError.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Unauthenticated("Invalid token")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthenticated("Invalid token")
	}
	return claims, nil
}
