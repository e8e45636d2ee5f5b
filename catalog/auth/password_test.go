package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "pw1" {
		t.Fatal("hash must never equal the plaintext")
	}
	if !Verify("pw1", hash) {
		t.Fatal("the original secret must verify against its own hash")
	}
	if Verify("pw2", hash) {
		t.Fatal("a different secret must not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	first, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("two hashes of the same secret must differ")
	}
	if !Verify("pw1", first) || !Verify("pw1", second) {
		t.Fatal("both salted hashes must verify against the secret")
	}
}

func TestHashRejectsOversizedSecrets(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	_, err := hasher.Hash(strings.Repeat("a", 73))
	if err == nil {
		t.Fatal("secrets beyond the bcrypt limit must be rejected, not truncated")
	}
}

func TestNewHasherClampsInvalidCost(t *testing.T) {
	hasher := NewHasher(-1)
	if hasher.cost != DefaultCost {
		t.Fatalf("invalid cost should fall back to the default, got %v", hasher.cost)
	}
}
