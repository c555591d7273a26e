package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the cost factor of the hashes already stored in
// the usuario table.
const DefaultBcryptCost = 10

// MinPasswordLength is the shortest password accepted when changing it.
const MinPasswordLength = 6

// HashPassword returns a bcrypt hash of plain at the given cost. A cost of
// zero selects DefaultBcryptCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash. Any
// malformed hash simply fails to match.
func VerifyPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
