package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	submissionID, formID := uuid.New(), uuid.New()
	token, err := CreateSessionToken(submissionID, formID)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, submissionID.String(), claims.SubmissionID)
	assert.Equal(t, formID.String(), claims.FormID)
}

// The secret is read per call, not at package init, so a secret loaded from
// .env after startup is the one that signs and verifies.
func TestSessionTokenUsesCurrentSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateSessionToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	fresh, err := CreateSessionToken(uuid.New(), uuid.New())
	require.NoError(t, err)
	_, err = ValidateSessionToken(fresh)
	assert.NoError(t, err)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ValidateSessionToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}
