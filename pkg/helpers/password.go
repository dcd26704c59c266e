package helpers

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// CompareDummy burns the same bcrypt work as a real comparison. Call it
// when no account matched so unknown emails take as long as bad passwords.
func CompareDummy(plain string) {
	dummyOnce.Do(func() {
		dummyHash, _ = HashPassword("dummy-password-never-matches")
	})
	_ = CompareHashAndPassword(dummyHash, plain)
}
