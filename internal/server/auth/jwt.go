// Package auth issues and verifies the bearer tokens handed to clients.
package auth

import (
	"time"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims and the owning user's identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, common.ErrorInvalidToken
	}

	return claims.UserID, nil
}
