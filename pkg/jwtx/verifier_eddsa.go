package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSAVerifier validates JWTs signed by a single Ed25519 key.
type EdDSAVerifier struct {
	pub    ed25519.PublicKey
	kid    string
	parser *jwt.Parser
}

// NewVerifierEdDSA creates a verifier for tokens issued by issuer and signed
// with pub. leeway absorbs clock skew on exp and iat.
func NewVerifierEdDSA(pub ed25519.PublicKey, issuer string, leeway time.Duration) *EdDSAVerifier {
	return &EdDSAVerifier{
		pub: pub,
		kid: KeyID(pub),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(leeway),
		),
	}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *EdDSAVerifier) Verify(tokenStr string) (*Claims, error) {
	token, err := v.parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if kid, _ := t.Header["kid"].(string); kid != v.kid {
			return nil, ErrUnknownKID
		}
		return v.pub, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaim
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownKID):
		return ErrUnknownKID
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
