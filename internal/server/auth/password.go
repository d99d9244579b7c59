package auth

import "golang.org/x/crypto/bcrypt"

// hashCost matches the original deployment's bcrypt work factor.
const hashCost = 10

// HashPassword returns the one-way hash to be stored instead of the
// plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether candidate matches the stored hash.
func CheckPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
