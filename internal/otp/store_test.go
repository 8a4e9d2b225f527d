package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	s := NewStore(DefaultTTL)

	code := s.Issue("a@b.com")
	require.Len(t, code, 6)

	assert.True(t, s.Verify("a@b.com", code))
}

func TestVerifyIsSingleUse(t *testing.T) {
	s := NewStore(DefaultTTL)

	code := s.Issue("a@b.com")
	require.True(t, s.Verify("a@b.com", code))

	// A second attempt with the same pair must fail.
	assert.False(t, s.Verify("a@b.com", code))
}

func TestVerifyWrongCode(t *testing.T) {
	s := NewStore(DefaultTTL)

	code := s.Issue("a@b.com")
	assert.False(t, s.Verify("a@b.com", "000000"))

	// The wrong attempt must not consume the real code.
	assert.True(t, s.Verify("a@b.com", code))
}

func TestVerifyUnknownEmail(t *testing.T) {
	s := NewStore(DefaultTTL)
	assert.False(t, s.Verify("nobody@b.com", "123456"))
}

func TestVerifyEmptyCode(t *testing.T) {
	s := NewStore(DefaultTTL)
	s.Issue("a@b.com")
	assert.False(t, s.Verify("a@b.com", ""))
}

func TestReissueReplacesCode(t *testing.T) {
	s := NewStore(DefaultTTL)

	first := s.Issue("a@b.com")
	second := s.Issue("a@b.com")

	if first != second {
		assert.False(t, s.Verify("a@b.com", first))
	}
	assert.True(t, s.Verify("a@b.com", second))
}

func TestExpiry(t *testing.T) {
	s := NewStore(50 * time.Millisecond)

	code := s.Issue("a@b.com")
	time.Sleep(120 * time.Millisecond)

	assert.False(t, s.Verify("a@b.com", code))
	assert.Equal(t, 0, s.Len())
}
