// Package otp issues and verifies the one-time codes that gate signup and
// password reset. Codes live in process memory with a hard TTL; nothing is
// persisted, so a restart invalidates all outstanding codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultTTL matches the "valid for 10 minutes" promise in the mail copy.
	DefaultTTL = 10 * time.Minute

	// maxPending bounds the store; oldest entries evict first.
	maxPending = 10000
)

type Store struct {
	codes *expirable.LRU[string, string]
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		codes: expirable.NewLRU[string, string](maxPending, nil, ttl),
	}
}

// Issue generates a fresh 6-digit code for the email, replacing any code
// issued earlier. Last write wins.
func (s *Store) Issue(email string) string {
	code := generateCode()
	s.codes.Add(email, code)
	return code
}

// Verify checks the code and consumes it on success. A second verification
// with the same pair fails.
func (s *Store) Verify(email, code string) bool {
	stored, ok := s.codes.Get(email)
	if !ok || code == "" || stored != code {
		return false
	}
	s.codes.Remove(email)
	return true
}

// Len reports the number of unexpired pending codes.
func (s *Store) Len() int {
	return s.codes.Len()
}

func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % 900000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
