// Package auth implements the stateless credential primitives: HS256 access
// tokens and bcrypt password hashing.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"diary/internal/common"
)

// Claims is the signed claim set carried by an access token: the standard
// registered claims plus the user's email. The user id travels in Subject.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken mints a signed access token for the given user.
func GenerateToken(userID int64, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry of a token and returns the
// resolved user id and claims. Every failure mode (bad signature, malformed
// structure, expired) collapses to common.ErrInvalidToken so callers cannot
// leak which check failed.
func ParseToken(tokenString string, secretKey []byte) (int64, *Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return 0, nil, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, nil, common.ErrInvalidToken
	}

	return userID, claims, nil
}
