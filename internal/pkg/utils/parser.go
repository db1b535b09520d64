package utils

import (
	"errors"
	"meetslot-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
)

// ParseViewerJWT verifies an HS256 token and returns its subject.
func ParseViewerJWT(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	if claims.Subject == "" {
		return "", errors.New(constvars.ErrDevAuthSubjectMissing)
	}
	return claims.Subject, nil
}
