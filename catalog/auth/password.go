package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type (
	// Hasher derives storeable password hashes. The cost is injectable
	// so tests can run at bcrypt.MinCost instead of paying the full
	// work factor on every registration.
	Hasher struct {
		cost int
	}
)

// DefaultCost keeps a single bcrypt invocation in the low hundreds of
// milliseconds on current server hardware.
const DefaultCost = 12

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash computes a salted, one-way hash of secret. Every call salts
// independently, so hashing the same secret twice yields different
// stored values which both verify against it.
func (h Hasher) Hash(secret string) (string, error) {
	if len(secret) > 72 {
		// bcrypt silently truncates longer inputs
		return "", fmt.Errorf("password must be 72 bytes or fewer")
	}
	buf, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("unable to hash password, cause %w", err)
	}
	return string(buf), nil
}

// Verify reports whether secret matches the stored hash. The underlying
// comparison runs in constant time regardless of where a mismatch
// occurs.
func Verify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
