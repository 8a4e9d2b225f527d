package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupBody(t *testing.T) {
	body := SignupBody("482913")

	assert.Contains(t, body, "482913")
	assert.Contains(t, body, "Welcome to MethaKadai!")
	assert.Contains(t, body, "valid for <strong>10 minutes</strong>")
}

func TestResetBody(t *testing.T) {
	body := ResetBody("173205")

	assert.Contains(t, body, "173205")
	assert.Contains(t, body, "Reset Your Password")
}
