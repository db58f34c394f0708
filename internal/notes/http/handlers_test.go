package http

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

func TestSessionRequired(t *testing.T) {
	r := newTestRouter(t)
	anon := &client{t: t, router: r, ip: "198.51.100.1"}

	requireMessage(t, anon.do(http.MethodGet, "/api/folders", nil),
		http.StatusUnauthorized, "Unauthorized - No token provided")

	anon.cookie = &http.Cookie{Name: "jwt-notes", Value: "forged"}
	requireMessage(t, anon.do(http.MethodGet, "/api/notes", nil),
		http.StatusUnauthorized, "Unauthorized - Invalid token")
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")

	rec := alice.do(http.MethodGet, "/api/auth/auth-check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[notesdk.UserResponse](t, rec)
	require.True(t, got.Success)
	require.Equal(t, "alice", got.User.Username)
	require.NotContains(t, rec.Body.String(), "password")

	guest := &client{t: t, router: r, ip: "198.51.100.2"}
	requireMessage(t, guest.do(http.MethodPost, "/api/auth/login", notesdk.LoginRequest{
		Email: "alice@example.com", Password: "wrong-password",
	}), http.StatusBadRequest, "Invalid credentials")

	rec = guest.do(http.MethodPost, "/api/auth/login", notesdk.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Result().Cookies())

	rec = alice.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Equal(t, -1, cleared[0].MaxAge)

	dup := &client{t: t, router: r, ip: "198.51.100.3"}
	requireMessage(t, dup.do(http.MethodPost, "/api/auth/signup", notesdk.SignupRequest{
		Username: "alice", Email: "other@example.com", Password: "secret123",
	}), http.StatusBadRequest, "Username already exists")
}

func TestBearerFallback(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")

	bearer := &client{t: t, router: r, ip: "198.51.100.1"}
	req, _ := http.NewRequest(http.MethodGet, "/api/profile/me", nil)
	req.Header.Set("Authorization", "Bearer "+alice.cookie.Value)
	req.Header.Set("X-Forwarded-For", bearer.ip)
	rec := newRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFolderOfAnotherUserIsNotFound(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")
	bob := signup(t, r, "bob", "198.51.100.2")

	rec := bob.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "Work"})
	require.Equal(t, http.StatusCreated, rec.Code)
	bobs := decode[notesdk.Folder](t, rec)

	requireMessage(t, alice.do(http.MethodGet, "/api/folders/"+bobs.ID, nil), http.StatusNotFound, "Folder not found")
	requireMessage(t, alice.do(http.MethodPut, "/api/folders/"+bobs.ID, notesdk.FolderRequest{Name: "Mine"}),
		http.StatusNotFound, "Folder not found")
	requireMessage(t, alice.do(http.MethodDelete, "/api/folders/"+bobs.ID, nil), http.StatusNotFound, "Folder not found")

	requireMessage(t, alice.do(http.MethodGet, "/api/folders/not-an-id", nil), http.StatusNotFound, "Folder not found")
}

func TestFolderScenario(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")
	bob := signup(t, r, "bob", "198.51.100.2")

	rec := alice.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "Work"})
	require.Equal(t, http.StatusCreated, rec.Code)
	work := decode[notesdk.Folder](t, rec)
	require.Equal(t, "#00FF9D", work.Color)

	requireMessage(t, alice.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "Work"}),
		http.StatusBadRequest, "Folder with this name already exists")
	require.Equal(t, http.StatusCreated, bob.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "Work"}).Code)

	rec = alice.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{Title: "T", Content: "C", FolderID: work.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	note := decode[notesdk.Note](t, rec)
	require.NotNil(t, note.FolderID)
	require.Equal(t, "Work", note.FolderID.Name)

	rec = alice.do(http.MethodGet, "/api/folders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	folders := decode[[]notesdk.Folder](t, rec)
	require.Len(t, folders, 1)
	require.NotNil(t, folders[0].NoteCount)
	require.Equal(t, 1, *folders[0].NoteCount)

	rec = alice.do(http.MethodGet, "/api/folders/"+work.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[notesdk.FolderDetail](t, rec)
	require.Len(t, detail.Notes, 1)

	requireMessage(t, alice.do(http.MethodDelete, "/api/folders/"+work.ID, nil), http.StatusOK, "Folder deleted successfully!")

	rec = alice.do(http.MethodGet, "/api/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.JSONEq(t, "null", string(raw["folderId"]))
}

func TestNoteForeignFolderRejected(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")
	bob := signup(t, r, "bob", "198.51.100.2")

	bobs := decode[notesdk.Folder](t, bob.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "B"}))

	requireMessage(t, alice.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{
		Title: "T", Content: "C", FolderID: bobs.ID,
	}), http.StatusBadRequest, "Invalid folder")

	notes := decode[[]notesdk.Note](t, alice.do(http.MethodGet, "/api/notes", nil))
	require.Empty(t, notes)
}

func TestUpdateNoteFolderField(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")

	work := decode[notesdk.Folder](t, alice.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "Work"}))
	note := decode[notesdk.Note](t, alice.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{
		Title: "T", Content: "C", FolderID: work.ID,
	}))

	rec := alice.do(http.MethodPut, "/api/notes/"+note.ID, json.RawMessage(`{"title":"renamed"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[notesdk.Note](t, rec)
	require.Equal(t, "renamed", got.Title)
	require.NotNil(t, got.FolderID)

	rec = alice.do(http.MethodPut, "/api/notes/"+note.ID, json.RawMessage(`{"folderId":null}`))
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[notesdk.Note](t, rec)
	require.Nil(t, got.FolderID)
	require.Equal(t, "renamed", got.Title)

	requireMessage(t, alice.do(http.MethodPut, "/api/notes/"+note.ID, json.RawMessage(`{"priority":"urgent"}`)),
		http.StatusBadRequest, "Invalid priority value")
}

func TestListNotesFilter(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")
	bob := signup(t, r, "bob", "198.51.100.2")

	work := decode[notesdk.Folder](t, alice.do(http.MethodPost, "/api/folders", notesdk.FolderRequest{Name: "Work"}))
	alice.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{Title: "filed", Content: "C", FolderID: work.ID})
	alice.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{Title: "loose", Content: "C"})
	bob.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{Title: "bob's", Content: "C"})

	for _, q := range []string{"none", "null"} {
		notes := decode[[]notesdk.Note](t, alice.do(http.MethodGet, "/api/notes?folderId="+q, nil))
		require.Len(t, notes, 1, q)
		require.Equal(t, "loose", notes[0].Title)
	}

	notes := decode[[]notesdk.Note](t, alice.do(http.MethodGet, "/api/notes?folderId="+work.ID, nil))
	require.Len(t, notes, 1)
	require.Equal(t, "filed", notes[0].Title)

	notes = decode[[]notesdk.Note](t, alice.do(http.MethodGet, "/api/notes", nil))
	require.Len(t, notes, 2)
}

func TestNoteHTMLAndDelete(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")

	note := decode[notesdk.Note](t, alice.do(http.MethodPost, "/api/notes", notesdk.CreateNoteRequest{
		Title: "T", Content: "**bold**",
	}))

	rec := alice.do(http.MethodGet, "/api/notes/"+note.ID+"/html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, decode[notesdk.NoteHTML](t, rec).HTML, "<strong>bold</strong>")

	requireMessage(t, alice.do(http.MethodDelete, "/api/notes/"+note.ID, nil), http.StatusOK, "Note deleted successfully!")
	requireMessage(t, alice.do(http.MethodGet, "/api/notes/"+note.ID, nil), http.StatusNotFound, "Note not found")
}

func TestProfileUpdate(t *testing.T) {
	r := newTestRouter(t)
	alice := signup(t, r, "alice", "198.51.100.1")
	signup(t, r, "bob", "198.51.100.2")

	rec := alice.do(http.MethodPut, "/api/profile/update", json.RawMessage(`{"bio":"hi there"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[notesdk.UserResponse](t, rec)
	require.Equal(t, "hi there", got.User.Bio)
	require.Equal(t, "Profile updated successfully", got.Message)

	requireMessage(t, alice.do(http.MethodPut, "/api/profile/update", json.RawMessage(`{"email":"bob@example.com"}`)),
		http.StatusBadRequest, "Email already exists")

	rec = alice.do(http.MethodGet, "/api/profile/me", nil)
	require.Equal(t, "alice@example.com", decode[notesdk.UserResponse](t, rec).User.Email)
}

func TestSignupRateLimited(t *testing.T) {
	r := newTestRouter(t)
	c := &client{t: t, router: r, ip: "203.0.113.9"}

	var last int
	for i := 0; i < 10; i++ {
		last = c.do(http.MethodPost, "/api/auth/signup", notesdk.SignupRequest{}).Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestHealthAndFallbacks(t *testing.T) {
	r := newTestRouter(t)
	c := &client{t: t, router: r, ip: "198.51.100.9"}

	rec := c.do(http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[notesdk.HealthResponse](t, rec).Status)

	rec = c.do(http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[notesdk.HealthResponse](t, rec)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)

	rec = c.do(http.MethodGet, "/.well-known/jwks.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"OKP"`)

	requireMessage(t, c.do(http.MethodGet, "/api/nothing-here", nil), http.StatusNotFound, "Not found")
}

func TestStaticHandlerFallsBackToIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	h := StaticHandler(dir)

	rec := newRecorder()
	h.ServeHTTP(rec, mustRequest(t, "/app.js"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "console.log")

	rec = newRecorder()
	h.ServeHTTP(rec, mustRequest(t, "/notes/some-client-route"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "app")
}
