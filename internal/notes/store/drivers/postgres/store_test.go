package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/postgres"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newStore starts a throwaway postgres container and returns a migrated store.
func newStore(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres tests need docker; skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "notes",
			"POSTGRES_PASSWORD": "notes",
			"POSTGRES_DB":       "notes",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://notes:notes@%s:%s/notes?sslmode=disable", host, port.Port())
	s, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, name string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedFolder(t *testing.T, s store.Store, userID, name string) domain.Folder {
	t.Helper()
	now := time.Now().UTC()
	f := domain.Folder{
		ID:        idx.New().String(),
		UserID:    userID,
		Name:      name,
		Color:     domain.DefaultColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Folders().CreateFolder(context.Background(), f))
	return f
}

func seedNote(t *testing.T, s store.Store, userID string, folderID *string, title string) domain.Note {
	t.Helper()
	now := time.Now().UTC()
	n := domain.Note{
		ID:        idx.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   "body",
		Priority:  domain.PriorityMedium,
		Color:     domain.DefaultColor,
		FolderID:  folderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Notes().CreateNote(context.Background(), n))
	return n
}

// The container is shared across subtests; it takes a few seconds to boot.
func TestPostgresStore(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	t.Run("migrations are idempotent", func(t *testing.T) {
		require.NoError(t, s.ApplyMigrations())
		require.NoError(t, s.Ping(ctx))
	})

	t.Run("duplicate username and email", func(t *testing.T) {
		u := seedUser(t, s, "alice")

		dup := u
		dup.ID = idx.New().String()
		dup.Email = "other@example.com"
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

		dup.Username = "alice2"
		dup.Email = u.Email
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

		got, err := s.Users().GetUserByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)

		_, err = s.Users().GetUserByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("folder names are unique per owner", func(t *testing.T) {
		a := seedUser(t, s, "fa")
		b := seedUser(t, s, "fb")
		seedFolder(t, s, a.ID, "Work")
		seedFolder(t, s, b.ID, "Work")

		now := time.Now().UTC()
		err := s.Folders().CreateFolder(ctx, domain.Folder{
			ID: idx.New().String(), UserID: a.ID, Name: "Work", Color: domain.DefaultColor,
			CreatedAt: now, UpdatedAt: now,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("folders are scoped to their owner", func(t *testing.T) {
		a := seedUser(t, s, "sa")
		b := seedUser(t, s, "sb")
		f := seedFolder(t, s, a.ID, "Private")

		_, err := s.Folders().GetFolder(ctx, b.ID, f.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Folders().DeleteFolder(ctx, b.ID, f.ID), store.ErrNotFound)
	})

	t.Run("list folders counts notes", func(t *testing.T) {
		u := seedUser(t, s, "counts")
		f1 := seedFolder(t, s, u.ID, "One")
		f2 := seedFolder(t, s, u.ID, "Two")
		seedNote(t, s, u.ID, &f1.ID, "a")
		seedNote(t, s, u.ID, &f1.ID, "b")

		folders, err := s.Folders().ListFolders(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, folders, 2)
		require.Equal(t, f2.ID, folders[0].ID)
		require.Equal(t, 0, folders[0].NoteCount)
		require.Equal(t, 2, folders[1].NoteCount)
	})

	t.Run("note filters and folder ref", func(t *testing.T) {
		u := seedUser(t, s, "filters")
		f := seedFolder(t, s, u.ID, "Ideas")
		inFolder := seedNote(t, s, u.ID, &f.ID, "in")
		loose := seedNote(t, s, u.ID, nil, "loose")

		all, err := s.Notes().ListNotes(ctx, u.ID, domain.NoteFilter{Scope: domain.NotesAll})
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, loose.ID, all[0].ID)

		none, err := s.Notes().ListNotes(ctx, u.ID, domain.NoteFilter{Scope: domain.NotesUnfoldered})
		require.NoError(t, err)
		require.Len(t, none, 1)
		require.Nil(t, none[0].Folder)

		in, err := s.Notes().ListNotes(ctx, u.ID, domain.NoteFilter{Scope: domain.NotesInFolder, FolderID: f.ID})
		require.NoError(t, err)
		require.Len(t, in, 1)
		require.Equal(t, inFolder.ID, in[0].ID)
		require.NotNil(t, in[0].Folder)
		require.Equal(t, "Ideas", in[0].Folder.Name)
	})

	t.Run("delete folder detaches notes in one transaction", func(t *testing.T) {
		u := seedUser(t, s, "detach")
		f := seedFolder(t, s, u.ID, "Temp")
		n := seedNote(t, s, u.ID, &f.ID, "keep me")

		err := s.WithTx(ctx, func(tx store.Tx) error {
			moved, err := tx.Notes().DetachFolder(ctx, u.ID, f.ID)
			if err != nil {
				return err
			}
			require.Equal(t, int64(1), moved)
			return tx.Folders().DeleteFolder(ctx, u.ID, f.ID)
		})
		require.NoError(t, err)

		got, err := s.Notes().GetNote(ctx, u.ID, n.ID)
		require.NoError(t, err)
		require.Nil(t, got.FolderID)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		u := seedUser(t, s, "rollback")
		f := seedFolder(t, s, u.ID, "Stay")

		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Folders().DeleteFolder(ctx, u.ID, f.ID))
			return store.ErrNotFound
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Folders().GetFolder(ctx, u.ID, f.ID)
		require.NoError(t, err)
	})
}
