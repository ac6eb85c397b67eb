package security

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for every stored credential.
const PasswordCost = 12

// BcryptHasher hashes and verifies account passwords with bcrypt.
type BcryptHasher struct{}

// NewPasswordHasher returns a bcrypt hasher with the fixed PasswordCost.
func NewPasswordHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash returns the self-describing bcrypt string ($2a$12$<salt><digest>).
func (BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. Malformed hashes never match.
func (BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
