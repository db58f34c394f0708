package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("NOTES_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "notes-api", cfg.Issuer)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.SessionTTL)
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, "notes.db", cfg.DatabaseFile)
	require.Equal(t, 5007, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.True(t, cfg.IsDev())
	require.False(t, cfg.SecureCookies)
}

func TestLoadConfigSecureCookiesOutsideDev(t *testing.T) {
	t.Setenv("NOTES_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ENV", "prod")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.SecureCookies)

	t.Setenv("NOTES_SECURE_COOKIES", "false")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.False(t, cfg.SecureCookies)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("PORT=6000\nNOTES_ISSUER=from-file\n"), 0o600))
	t.Setenv("NOTES_ENV_FILE", file)
	t.Setenv("NOTES_ISSUER", "from-env")
	// godotenv never overrides a variable that exists, even when empty.
	// Setenv registers the restore; Unsetenv lets the file provide PORT.
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 6000, cfg.Port)
	require.Equal(t, "from-env", cfg.Issuer)
}

func TestLoadConfigPostgresNeedsURL(t *testing.T) {
	t.Setenv("NOTES_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("NOTES_DATABASE_DRIVER", "postgres")
	t.Setenv("NOTES_DATABASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestGetEnvDurationOrDefault(t *testing.T) {
	t.Setenv("NOTES_TEST_DURATION", "90s")
	require.Equal(t, 90*time.Second, getEnvDurationOrDefault("NOTES_TEST_DURATION", time.Minute))

	t.Setenv("NOTES_TEST_DURATION", "5")
	require.Equal(t, 5*time.Minute, getEnvDurationOrDefault("NOTES_TEST_DURATION", time.Minute))

	t.Setenv("NOTES_TEST_DURATION", "soon")
	require.Equal(t, time.Minute, getEnvDurationOrDefault("NOTES_TEST_DURATION", time.Minute))
}

func TestInitSessionKeys(t *testing.T) {
	t.Run("ephemeral", func(t *testing.T) {
		km, err := InitSessionKeys(Config{Issuer: "notes-test", NumKeys: 2}, slogx.Discard())
		require.NoError(t, err)
		require.Equal(t, 2, km.NumSigners())
	})

	t.Run("key file is stable across restarts", func(t *testing.T) {
		cfg := Config{Issuer: "notes-test", SigningKeyFile: filepath.Join(t.TempDir(), "signing.pem")}

		first, err := InitSessionKeys(cfg, slogx.Discard())
		require.NoError(t, err)
		second, err := InitSessionKeys(cfg, slogx.Discard())
		require.NoError(t, err)
		require.Equal(t, first.GetSigner().KID(), second.GetSigner().KID())
	})
}
