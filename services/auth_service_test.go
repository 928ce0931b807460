package services

import (
	"testing"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureMailer records delivered codes instead of sending anything
type captureMailer struct {
	emails []string
	codes  []string
}

func (m *captureMailer) SendConfirmationCode(email, code string) error {
	m.emails = append(m.emails, email)
	m.codes = append(m.codes, code)
	return nil
}

func useCaptureMailer(t *testing.T) *captureMailer {
	t.Helper()
	m := &captureMailer{}
	SetMailer(m)
	t.Cleanup(func() { SetMailer(LogMailer{}) })
	return m
}

func TestSignupAndTokenExchange(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	m := useCaptureMailer(t)

	require.NoError(t, Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com"}))
	require.Len(t, m.codes, 1)
	assert.Equal(t, "alice@example.com", m.emails[0])

	resp, err := GetToken(dto.TokenRequest{Username: "alice", ConfirmationCode: m.codes[0]})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenRejectsBadCode(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	m := useCaptureMailer(t)

	require.NoError(t, Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com"}))
	require.Len(t, m.codes, 1)

	_, err := GetToken(dto.TokenRequest{Username: "alice", ConfirmationCode: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = GetToken(dto.TokenRequest{Username: "ghost", ConfirmationCode: m.codes[0]})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSignupConflicts(t *testing.T) {
	setupTestDB(t)
	m := useCaptureMailer(t)

	require.NoError(t, Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com"}))

	// Same username, different email
	err := Signup(dto.SignupRequest{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Same email, different username
	err = Signup(dto.SignupRequest{Username: "alice2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Same pair re-issues a fresh code
	require.NoError(t, Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com"}))
	require.Len(t, m.codes, 2)
	assert.NotEqual(t, m.codes[0], m.codes[1])
}
