package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/mdx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "notes-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type services struct {
	auth    *AuthService
	folders *FolderService
	notes   *NoteService
	profile *ProfileService
}

func newServices(t *testing.T) services {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "notes-test", NumKeys: 1})
	require.NoError(t, err)

	return services{
		auth:    &AuthService{Store: st, KeyManager: km, Issuer: "notes-test"},
		folders: &FolderService{Store: st},
		notes:   &NoteService{Store: st, Markdown: mdx.New()},
		profile: &ProfileService{Store: st},
	}
}

// signup creates a user named name and returns its id.
func (s services) signup(t *testing.T, name string) string {
	t.Helper()
	sess, err := s.auth.Signup(context.Background(), SignupInput{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return sess.User.ID
}

func (s services) folder(t *testing.T, owner, name string) domain.Folder {
	t.Helper()
	f, err := s.folders.CreateFolder(context.Background(), owner, FolderInput{Name: name})
	require.NoError(t, err)
	return f
}

func (s services) note(t *testing.T, owner, title, folderID string) domain.Note {
	t.Helper()
	n, err := s.notes.CreateNote(context.Background(), owner, NoteInput{
		Title:    title,
		Content:  "content of " + title,
		FolderID: folderID,
	})
	require.NoError(t, err)
	return n
}
