package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 8
	bcryptCost     = 10
)

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", validationErrorf("password must be at least %d characters", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		// bcrypt rejects inputs longer than 72 bytes.
		return "", validationErrorf("password cannot be used: %v", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) error {
	if hash == "" {
		return fmt.Errorf("account has no password")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
