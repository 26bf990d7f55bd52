package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "expense-approval-app"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT("user-1", testSecret, -time.Minute, testIssuer)
	require.NoError(t, err)
	foreign, err := GenerateJWT("user-1", testSecret, time.Hour, "other")
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	valid, err := GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	none, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	otherAlg, err := hs512.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"expired", expired, testSecret, jwt.ErrTokenExpired},
		{"wrong issuer", foreign, testSecret, jwt.ErrTokenInvalidIssuer},
		{"wrong secret", valid, "other-secret", jwt.ErrTokenSignatureInvalid},
		{"none algorithm", none, testSecret, jwt.ErrTokenSignatureInvalid},
		{"other hmac algorithm", otherAlg, testSecret, jwt.ErrTokenSignatureInvalid},
		{"missing subject", noSubject, testSecret, ErrMissingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidateJWT(tt.token, tt.secret, testIssuer)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseAndValidateJWT_NoIssuerCheck(t *testing.T) {
	token, err := GenerateJWT("user-1", testSecret, time.Hour, "anyone")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, testSecret, "")
	assert.NoError(t, err)
}
