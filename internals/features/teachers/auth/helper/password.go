package helper

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor. It is fixed, not configurable.
const PasswordCost = 10

var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword returns a salted bcrypt hash; the salt lives inside the hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash returns nil only when password produced hash.
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CredentialStore adapts the helpers above to repository.PasswordHasher.
type CredentialStore struct{}

func NewCredentialStore() CredentialStore {
	return CredentialStore{}
}

func (CredentialStore) HashPassword(plain string) (string, error) {
	return HashPassword(plain)
}

func (CredentialStore) VerifyPassword(plain, hash string) bool {
	return CheckPasswordHash(hash, plain) == nil
}
