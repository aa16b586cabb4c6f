package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateSessionToken_TamperedSignature(t *testing.T) {
	token, err := GenerateSessionToken("session-123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateSessionToken(tampered)
	assert.Error(t, err)
}

func TestValidateSessionToken_WrongAlgorithmRejected(t *testing.T) {
	// An unsigned token never validates, whatever its claims say.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzaWQiOiJzZXNzaW9uLTEyMyJ9."
	_, err := ValidateSessionToken(unsigned)
	assert.Error(t, err)
}
