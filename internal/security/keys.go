package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	MinSecretLength = 32
	signingKeyInfo  = "healthlog api signing key v1"
	signingKeyBytes = 32
)

var (
	ErrSecretTooShort  = fmt.Errorf("secret key must be at least %d characters", MinSecretLength)
	ErrSecretIsDefault = errors.New("secret key is a placeholder value")
	placeholderSecrets = []string{"change-me", "changeme", "secret", "replace_with_strong_random_secret"}
)

// ValidateSecret rejects secrets that are too short or that look like a
// value copied from sample configuration.
func ValidateSecret(secret string) error {
	trimmed := strings.TrimSpace(secret)
	lowered := strings.ToLower(trimmed)
	for _, placeholder := range placeholderSecrets {
		if lowered == placeholder {
			return ErrSecretIsDefault
		}
	}
	if len(trimmed) < MinSecretLength {
		return ErrSecretTooShort
	}
	return nil
}

// DeriveKey expands the configured secret into a fixed-size key for purpose.
// Distinct purposes yield independent keys from the same secret.
func DeriveKey(secret string, purpose string) ([]byte, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretTooShort
	}
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	key := make([]byte, signingKeyBytes)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// SigningKey is the HMAC key for API bearer tokens.
func SigningKey(secret string) ([]byte, error) {
	return DeriveKey(secret, signingKeyInfo)
}
