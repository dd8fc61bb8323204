// Package credentials holds the password digest and email shape helpers
// shared by signup and login.
package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	HasherSHA256 = "sha256"
	HasherBcrypt = "bcrypt"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Digest returns the hex-encoded SHA-256 of password (64 characters).
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Hasher produces and verifies stored password representations.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// SHA256Hasher stores the unsalted hex digest. It matches the records
// already present in the accounts collection.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	return Digest(password), nil
}

func (SHA256Hasher) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(Digest(password))) == 1
}

// BcryptHasher stores bcrypt hashes at the given cost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HasherSHA256:
		return SHA256Hasher{}, nil
	case HasherBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}
