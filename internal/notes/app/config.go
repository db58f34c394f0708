package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string        // Issuer claim on session tokens (default: notes-api)
	SessionTTL     time.Duration // Session token and cookie lifetime (default: 360h)
	SigningKeyFile string        // Optional: Ed25519 PEM key; generated on first start. Empty keeps keys in memory
	NumKeys        int           // Number of in-memory signing keys when SigningKeyFile is empty (default: 3)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite file (default: notes.db)
	DatabaseURL    string // Postgres DSN, required for the postgres driver
	PepperFile     string // Pepper for password hashing (default: pepper)

	CORSOrigin    string // Dev frontend origin, only honoured when Env is dev (default: http://localhost:5006)
	StaticDir     string // Optional: built frontend served at /
	SecureCookies bool   // Mark the session cookie Secure (default: true outside dev)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5007)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the environment, after loading a .env file if one exists.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	envFile := getEnvOrDefault("NOTES_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{
		Issuer:         getEnvOrDefault("NOTES_ISSUER", "notes-api"),
		SessionTTL:     getEnvDurationOrDefault("NOTES_SESSION_TTL", jwtx.DefaultSessionTTL),
		SigningKeyFile: os.Getenv("NOTES_SIGNING_KEY_FILE"),
		NumKeys:        getEnvIntOrDefault("NOTES_NUM_KEYS", 3),

		DatabaseDriver: getEnvOrDefault("NOTES_DATABASE_DRIVER", "sqlite"),
		DatabaseFile:   getEnvOrDefault("NOTES_DATABASE_FILE", "notes.db"),
		DatabaseURL:    os.Getenv("NOTES_DATABASE_URL"),
		PepperFile:     getEnvOrDefault("NOTES_PEPPER_FILE", "pepper"),

		CORSOrigin: getEnvOrDefault("NOTES_CORS_ORIGIN", "http://localhost:5006"),
		StaticDir:  os.Getenv("NOTES_STATIC_DIR"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5007),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	cfg.SecureCookies = getEnvBoolOrDefault("NOTES_SECURE_COOKIES", !cfg.IsDev())

	if cfg.DatabaseDriver == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("NOTES_DATABASE_URL is required for the postgres driver")
	}
	return cfg, nil
}

// IsDev is true for local development: plain-http cookies and the dev CORS
// origin are allowed.
func (c Config) IsDev() bool { return c.Env == "dev" }

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
