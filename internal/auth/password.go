package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const hashCost = bcrypt.DefaultCost

var errEmptyPassword = errors.New("password must not be empty")

// HashPassword returns the bcrypt hash stored for an admin credential.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(hash), err
}

// ComparePassword reports a non-nil error on any mismatch, including an
// empty stored hash; callers treat every error as bad credentials.
func ComparePassword(hash, password string) error {
	if hash == "" || password == "" {
		return errEmptyPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
