package jwtx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
}

// KeyID derives a stable kid from an Ed25519 public key so restarts with the
// same key file produce the same header.
func KeyID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return base64.RawURLEncoding.EncodeToString(sum[:12])
}
