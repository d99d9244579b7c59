// Package auth implements the stateless credential primitives: signed
// bearer tokens and password hashing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogcms/internal/common"
)

// TokenValidity is the fixed lifetime of an issued token. There is no
// refresh mechanism; clients re-authenticate after expiry.
const TokenValidity = 7 * 24 * time.Hour

// Claims carries the identity and role encoded in a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// GenerateToken produces a signed HS256 token for the given user,
// expiring TokenValidity from now.
func GenerateToken(userID, role string, secretKey []byte) (string, error) {
	return generateTokenAt(userID, role, secretKey, time.Now())
}

func generateTokenAt(userID, role string, secretKey []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Malformed, badly signed and expired tokens all fail with
// common.ErrInvalidToken; callers cannot tell them apart.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
