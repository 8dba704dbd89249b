package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for all stored member digests.
const bcryptCost = 12

// HashPassword returns a one-way bcrypt digest of plaintext with a
// per-call random salt.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches digest. Malformed
// digests report false rather than an error.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
