package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "taskboard-test"

func newSigner(t *testing.T) *jwtx.EdDSASigner {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(key)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newSigner(t)
	require.Equal(t, "EdDSA", signer.Alg())
	require.NotEmpty(t, signer.KID())

	now := time.Now().UTC()
	token, err := signer.Sign(jwtx.NewSessionClaims(7, 3, testIssuer, time.Hour, now))
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, time.Minute)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), claims.SID)

	userID, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, uint64(3), userID)
	require.NotNil(t, claims.ExpiresAt)
}

func TestEdDSASessionClaimsWithoutTTL(t *testing.T) {
	t.Parallel()

	signer := newSigner(t)
	token, err := signer.Sign(jwtx.NewSessionClaims(1, 1, testIssuer, 0, time.Now()))
	require.NoError(t, err)

	claims, err := jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0).Verify(token)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}

func TestEdDSAVerifyLargeSessionID(t *testing.T) {
	t.Parallel()

	signer := newSigner(t)
	sid := uint64(1)<<62 + 12345
	token, err := signer.Sign(jwtx.NewSessionClaims(sid, 1, testIssuer, 0, time.Now()))
	require.NoError(t, err)

	claims, err := jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0).Verify(token)
	require.NoError(t, err)
	require.Equal(t, sid, claims.SID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	t.Parallel()

	signer := newSigner(t)
	other := newSigner(t)
	now := time.Now().UTC()

	valid, err := signer.Sign(jwtx.NewSessionClaims(1, 1, testIssuer, time.Hour, now))
	require.NoError(t, err)
	expired, err := signer.Sign(jwtx.NewSessionClaims(1, 1, testIssuer, time.Minute, now.Add(-time.Hour)))
	require.NoError(t, err)
	wrongKey, err := other.Sign(jwtx.NewSessionClaims(1, 1, testIssuer, time.Hour, now))
	require.NoError(t, err)

	badSubject := jwtx.NewSessionClaims(1, 1, testIssuer, time.Hour, now)
	badSubject.Subject = "alice"
	badSubjectToken, err := signer.Sign(badSubject)
	require.NoError(t, err)

	hs, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtx.NewSessionClaims(1, 1, testIssuer, time.Hour, now)).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		verifier *jwtx.EdDSAVerifier
		wantErr  error
	}{
		{"garbage", "not.a.jwt", jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0), jwtx.ErrMalformed},
		{"expired", expired, jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0), jwtx.ErrExpired},
		{"wrong issuer", valid, jwtx.NewVerifierEdDSA(signer.PublicKey(), "someone-else", 0), jwtx.ErrIssuer},
		{"other key", wrongKey, jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0), jwtx.ErrUnknownKID},
		{"non numeric subject", badSubjectToken, jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0), jwtx.ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("hmac token rejected", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0).Verify(hs)
		require.Error(t, err)
	})
}

func TestNewSignerEdDSARejectsShortKey(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerEdDSA(ed25519.PrivateKey("short"))
	require.Error(t, err)
}
