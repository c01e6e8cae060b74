package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL  = 30 * 24 * time.Hour
	tokenIssuer      = "healthlog"
	apiTokenAudience = "healthlog-api"
)

var (
	ErrTokenMissing = errors.New("missing bearer token")
	ErrTokenInvalid = errors.New("invalid bearer token")
	ErrTokenExpired = errors.New("expired bearer token")
)

type APIClaims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an API token for subject, valid for ttl from now.
func IssueToken(key []byte, subject string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now.IsZero() {
		now = time.Now()
	}
	if strings.TrimSpace(subject) == "" {
		subject = "local"
	}

	claims := APIClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{apiTokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies rawToken against key and returns its claims.
func ParseToken(key []byte, rawToken string, now time.Time) (*APIClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &APIClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return key, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(apiTokenAudience),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
