package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const secretAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const MinPasswordLength = 8

var (
	ErrSecretTooShort   = errors.New("secret length must be at least 16")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("password does not match")
)

// NewSigningSecret returns a random token suitable for auth.secret_key.
func NewSigningSecret(length int) (string, error) {
	if length < 16 {
		return "", ErrSecretTooShort
	}

	limit := big.NewInt(int64(len(secretAlphabet)))
	var builder strings.Builder
	builder.Grow(length)
	for builder.Len() < length {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		builder.WriteByte(secretAlphabet[position.Int64()])
	}
	return builder.String(), nil
}

func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(hash)), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
