package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session-token claims. The token is only a tamper-proof
// carrier for the session id; whether the session is still alive is decided
// by the session registry, not by the token.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID
	SID uint64 `json:"sid"`
}

// NewSessionClaims builds claims for session sid owned by userID. A zero ttl
// leaves out the exp claim.
func NewSessionClaims(sid, userID uint64, issuer string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  strconv.FormatUint(userID, 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
		SID: sid,
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// UserID parses the subject back into a user id.
func (c *Claims) UserID() (uint64, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidClaim
	}
	return id, nil
}
