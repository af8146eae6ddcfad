package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by Verify when the stored hash cannot be
// parsed. A wrong password is never an error.
var ErrMalformedHash = errors.New("cryptox: malformed password hash")

// Argon2Params tunes the Argon2id key derivation.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follows the OWASP minimum for argon2id (19 MiB, t=2, p=1).
var DefaultArgon2Params = Argon2Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2Hasher produces and checks PHC-format argon2id strings of the form
// $argon2id$v=19$m=X,t=Y,p=Z$salt$hash. The pepper is appended to every
// password before hashing and never stored alongside the hash.
type Argon2Hasher struct {
	Pepper string
	Params Argon2Params
}

// NewArgon2Hasher returns a hasher using DefaultArgon2Params.
func NewArgon2Hasher(pepper string) *Argon2Hasher {
	return &Argon2Hasher{Pepper: pepper, Params: DefaultArgon2Params}
}

// Hash derives a salted hash of password.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	p := h.Params
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: failed to read salt: %w", err)
	}

	key := argon2.IDKey([]byte(password+h.Pepper), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory,
		p.Iterations,
		p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches encoded. The parameters embedded in
// encoded are used, so hashes survive a change of Params.
func (h *Argon2Hasher) Verify(encoded, password string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return false, fmt.Errorf("%w: unsupported version %q", ErrMalformedHash, parts[2])
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, fmt.Errorf("%w: key", ErrMalformedHash)
	}

	got := argon2.IDKey(
		[]byte(password+h.Pepper),
		salt,
		p.Iterations,
		p.Memory,
		p.Parallelism,
		uint32(len(want)), // #nosec G115 - decoded key length is tiny
	)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
