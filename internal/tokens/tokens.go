package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mycrmsystems/elatco-will-system/internal/config"
)

// AdminSubject is the sub claim carried by admin access tokens. There is a
// single configured administrator, so no per-user subject exists.
const AdminSubject = "admin"

// GenerateAccessToken creates a signed JWT access token for the admin session
func GenerateAccessToken(cfg *config.Config, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   AdminSubject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// VerifyAccessToken parses and validates a token, returning its claims.
func VerifyAccessToken(cfg *config.Config, raw string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
