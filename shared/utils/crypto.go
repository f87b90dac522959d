package utils

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/leerobin22/forum-api/shared/domain"
)

// NewIdGenerator returns a generator of 16 character tokens cut from random
// uuids.
func NewIdGenerator() domain.IdGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
