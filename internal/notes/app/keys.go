package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
)

// InitSessionKeys builds the KeyManager that signs and verifies sessions.
//
// With NOTES_SIGNING_KEY_FILE set, a single Ed25519 key is loaded from that
// file (or generated and written on first start) so sessions survive
// restarts. Without it, NumKeys keys are generated in memory and every
// session ends when the process does.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	opts := jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	}

	if cfg.SigningKeyFile == "" {
		km, err := jwtx.NewEphemeralKeyManager(opts)
		if err != nil {
			return nil, err
		}
		logger.Info("session keys generated in memory", "keys", km.NumSigners())
		return km, nil
	}

	pemKey, err := cryptox.LoadOrGenerateEd25519Key(cfg.SigningKeyFile)
	if err != nil {
		return nil, fmt.Errorf("load signing key: %w", err)
	}
	km, err := jwtx.NewKeyManagerFromPEM(pemKey, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("session key loaded", "path", cfg.SigningKeyFile, "kid", km.GetSigner().KID())
	return km, nil
}
