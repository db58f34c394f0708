package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/mdx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/aussiebroadwan/notes/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "notes-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "notes-test", NumKeys: 1})
	require.NoError(t, err)

	r := NewRouter(km.KeySet, "test", st, slogx.Discard())
	r.AuthService = &service.AuthService{Store: st, KeyManager: km, Issuer: "notes-test"}
	r.FolderService = &service.FolderService{Store: st}
	r.NoteService = &service.NoteService{Store: st, Markdown: mdx.New()}
	r.ProfileService = &service.ProfileService{Store: st}
	r.ApplyRoutes()
	return r
}

// client is one browser: a session cookie and a client address.
type client struct {
	t      *testing.T
	router *Router
	ip     string
	cookie *http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", c.ip)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

// signup registers name and keeps the session cookie.
func signup(t *testing.T, r *Router, name, ip string) *client {
	t.Helper()
	c := &client{t: t, router: r, ip: ip}

	rec := c.do(http.MethodPost, "/api/auth/signup", notesdk.SignupRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == httpx.SessionCookieName {
			c.cookie = ck
		}
	}
	require.NotNil(t, c.cookie)
	require.True(t, c.cookie.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, c.cookie.SameSite)
	return c
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, msg, decode[notesdk.MessageResponse](t, rec).Message)
}

func newRecorder() *httptest.ResponseRecorder { return httptest.NewRecorder() }

func mustRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, path, nil)
}
