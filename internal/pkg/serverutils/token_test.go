package serverutils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestParseSubject(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{"sub": "user-1"})

	subject, err := ParseSubject(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestParseSubjectWrongSecret(t *testing.T) {
	token := signedToken(t, []byte("someone-elses-secret"), jwt.MapClaims{"sub": "user-1"})

	_, err := ParseSubject(token, testSecret)
	assert.Error(t, err)
}

func TestParseSubjectMalformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseSubject(token, testSecret)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseSubjectRejectsNone(t *testing.T) {
	// alg:none tokens must never be accepted, with or without a signature.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSubject(token, testSecret)
	assert.Error(t, err)
}

func TestParseSubjectMissingSubject(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{"email": "dealer@example.com"})

	_, err := ParseSubject(token, testSecret)
	assert.Error(t, err)
}

func TestParseSubjectExpired(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ParseSubject(token, testSecret)
	assert.Error(t, err)
}
