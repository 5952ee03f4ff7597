package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokens := NewTokenUsecase(testSecret, time.Hour)

	payload := map[string]interface{}{
		"uid":  "u1",
		"role": "buyer",
	}

	tokenString, err := tokens.Issue(payload)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := tokens.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestVerify_Expired(t *testing.T) {
	tokens := NewTokenUsecase(testSecret, -time.Minute)

	tokenString, err := tokens.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	_, err = tokens.Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_ForeignSignature(t *testing.T) {
	theirs := NewTokenUsecase("somebody-elses-secret", time.Hour)
	ours := NewTokenUsecase(testSecret, time.Hour)

	tokenString, err := theirs.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	_, err = ours.Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	tokens := NewTokenUsecase(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestVerify_Tampered(t *testing.T) {
	tokens := NewTokenUsecase(testSecret, time.Hour)

	tokenString, err := tokens.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	// flip the first signature byte so the mutation never no-ops
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
