package token

import (
	"errors"
	"testing"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/models"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestIssuer() *Issuer {
	return NewIssuer(config.JWTConfig{Secret: testSecret, Issuer: "yamdb", AccessTTL: time.Hour})
}

func TestIssueAndVerify(t *testing.T) {
	issuer := newTestIssuer()

	signed, err := issuer.Issue(&models.User{ID: 42})
	require.NoError(t, err)

	id, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestIssuedClaims(t *testing.T) {
	issuer := newTestIssuer()

	signed, err := issuer.Issue(&models.User{ID: 7})
	require.NoError(t, err)

	claims := Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, &claims)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, "yamdb", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := newTestIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, err := issuer.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	other := NewIssuer(config.JWTConfig{Secret: "another-secret-another-secret-xx", Issuer: "yamdb", AccessTTL: time.Hour})

	signed, err := other.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = newTestIssuer().Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "a.b.c"} {
		_, err := newTestIssuer().Verify(raw)
		assert.True(t, errors.Is(err, ErrInvalidToken), "token %q", raw)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "yamdb",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestIssuer().Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
