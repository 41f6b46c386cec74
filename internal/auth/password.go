package auth

import (
	"github.com/born2vin/hoskote-backend/errors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// HashPassword returns a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", errors.ValidationFailed("Password too short",
			"password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, errors.ServerError, "Failed to hash password")
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password against its stored bcrypt hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
