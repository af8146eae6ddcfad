package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// sessionClockLeeway absorbs clock skew between instances sharing a key.
const sessionClockLeeway = 30 * time.Second

// InitSessionKeys loads the Ed25519 key that signs session cookies, creating
// it on first start. Without a key file a fresh key is generated and every
// cookie issued before a restart stops verifying.
func InitSessionKeys(cfg AuthConfig, logger *slog.Logger) (*jwtx.EdDSASigner, *jwtx.EdDSAVerifier, error) {
	var key ed25519.PrivateKey

	if cfg.SessionKeyFile == "" {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		key = priv
		logger.Warn("using an ephemeral session key; sessions will not survive a restart")
	} else {
		priv, err := cryptox.LoadOrCreateEd25519Key(cfg.SessionKeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load session key: %w", err)
		}
		key = priv
	}

	signer, err := jwtx.NewSignerEdDSA(key)
	if err != nil {
		return nil, nil, err
	}
	verifier := jwtx.NewVerifierEdDSA(signer.PublicKey(), cfg.Issuer, sessionClockLeeway)

	logger.Info("session signing key ready", "kid", signer.KID(), "alg", signer.Alg())
	return signer, verifier, nil
}
