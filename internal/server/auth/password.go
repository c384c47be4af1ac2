package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the service has always stored hashes with.
// Raising it only affects newly written hashes.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest. The salt is embedded, so
// hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored digest.
// A malformed digest is a verification failure, not an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
