package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/notes/internal/notes/http"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/postgres"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/mdx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/notes/internal/notes/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application owns the store, the session keys and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager

	authService    *service.AuthService
	folderService  *service.FolderService
	noteService    *service.NoteService
	profileService *service.ProfileService

	server *http.Server
	router *httpapi.Router
}

// New opens the store, prepares session keys and builds the HTTP server.
// Nothing listens until Run.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "notes-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	km, err := InitSessionKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("session keys: %w", err)
	}
	app.keyManager = km

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run serves until the server fails or SIGINT/SIGTERM arrives, then shuts
// down within the grace period.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Info("notes service listening", "addr", app.server.Addr, "version", BuildVersion)

	serveErr := make(chan error, 1)
	go func() { serveErr <- app.server.ListenAndServe() }()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		_ = app.db.Close()
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		app.logger.Info("shutdown requested")
	}
	return app.Shutdown()
}

// Shutdown drains in-flight requests, forcing connections closed once the
// grace period runs out, and then closes the store.
func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Warn("grace period exceeded, closing connections", "err", err)
		_ = app.server.Close()
	}

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	app.logger.Info("notes service stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", app.cfg.DatabaseDriver, err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate %s store: %w", app.cfg.DatabaseDriver, err)
	}

	app.db = db
	app.logger.Info("store ready", "driver", app.cfg.DatabaseDriver)
	return nil
}

func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case "sqlite":
		return sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile))
	case "postgres":
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		KeyManager: app.keyManager,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.folderService = &service.FolderService{Store: app.db}
	app.noteService = &service.NoteService{Store: app.db, Markdown: mdx.New()}
	app.profileService = &service.ProfileService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.keyManager.KeySet, BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.FolderService = app.folderService
	router.NoteService = app.noteService
	router.ProfileService = app.profileService

	router.SessionTTL = app.cfg.SessionTTL
	router.SecureCookies = app.cfg.SecureCookies
	router.StaticDir = app.cfg.StaticDir
	if app.cfg.IsDev() {
		router.CORSOrigin = app.cfg.CORSOrigin
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
