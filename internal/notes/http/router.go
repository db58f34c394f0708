package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"

	_ "github.com/aussiebroadwan/notes/api/notes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService    *service.AuthService
	FolderService  *service.FolderService
	NoteService    *service.NoteService
	ProfileService *service.ProfileService

	// CORSOrigin is the one cross-origin caller allowed, usually the dev
	// frontend. Empty disables CORS.
	CORSOrigin string
	// SecureCookies marks the session cookie Secure. Off only for plain-http dev.
	SecureCookies bool
	// SessionTTL is the cookie lifetime; it matches the token lifetime.
	SessionTTL time.Duration
	// StaticDir holds the built frontend. Empty serves the API only.
	StaticDir string
}

func NewRouter(keys *jwtx.KeySet, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		SessionTTL:   jwtx.DefaultSessionTTL,
	}
}

func (r *Router) ApplyRoutes() {
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(r.CORSOrigin),
	}

	r.registerAuth()
	r.registerProfile()
	r.registerFolders()
	r.registerNotes()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())

	// Unknown API paths must not fall through to the SPA.
	r.Mux.Handle("GET /api/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	}))
	if r.StaticDir != "" {
		r.Mux.Handle("GET /", StaticHandler(r.StaticDir))
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Notes API
//	@version		0.1.0
//	@description	Personal notes and folders. Every folder and note belongs to the signed-in user;
//	@description	records of other users are reported as not found.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/notes
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:5007
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						jwt-notes
//	@description				Signed session token set by login and signup.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session guards a handler with the session cookie and a per-user limit.
func (r *Router) session(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.SessionMiddleware(r.AuthService),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:    r.AuthService,
		ProfileService: r.ProfileService,
		SecureCookies:  r.SecureCookies,
		SessionTTL:     r.SessionTTL,
	}

	// Credential endpoints - strict limit by IP against guessing
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout), httpx.RateLimitByIP(httpx.LenientLimit)))

	// The frontend calls auth-check on every page load
	r.Mux.Handle("GET /api/auth/auth-check",
		r.session(http.HandlerFunc(h.HandleAuthCheck), httpx.LenientLimit))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /api/profile/me", r.session(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/profile/update", r.session(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
}

func (r *Router) registerFolders() {
	h := &FolderHandler{FolderService: r.FolderService}

	r.Mux.Handle("GET /api/folders", r.session(http.HandlerFunc(h.HandleList), httpx.ModerateLimit))
	r.Mux.Handle("POST /api/folders", r.session(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/folders/{id}", r.session(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/folders/{id}", r.session(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/folders/{id}", r.session(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerNotes() {
	h := &NoteHandler{NoteService: r.NoteService}

	r.Mux.Handle("GET /api/notes", r.session(http.HandlerFunc(h.HandleList), httpx.ModerateLimit))
	r.Mux.Handle("POST /api/notes", r.session(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/notes/{id}", r.session(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/notes/{id}/html", r.session(http.HandlerFunc(h.HandleRender), httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/notes/{id}", r.session(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/notes/{id}", r.session(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
