package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Every folder and note method takes the owner's user id and
// never touches rows belonging to anyone else.
type Store interface {
	Users() Users
	Folders() Folders
	Notes() Notes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. A taken username or email is
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile writes username, email and bio and bumps updated_at.
	UpdateProfile(ctx context.Context, u domain.User) error
}

type Folders interface {
	// ListFolders returns the owner's folders newest first, with note counts.
	ListFolders(ctx context.Context, userID string) ([]domain.FolderWithCount, error)

	GetFolder(ctx context.Context, userID, id string) (domain.Folder, error)

	// GetFolderByName is an exact, case-sensitive match.
	GetFolderByName(ctx context.Context, userID, name string) (domain.Folder, error)

	// CreateFolder inserts f. A duplicate (user, name) is ErrAlreadyExists.
	CreateFolder(ctx context.Context, f domain.Folder) error

	// UpdateFolder replaces name, description and color.
	UpdateFolder(ctx context.Context, f domain.Folder) error

	DeleteFolder(ctx context.Context, userID, id string) error
}

type Notes interface {
	// ListNotes returns notes newest first with Folder filled in.
	ListNotes(ctx context.Context, userID string, filter domain.NoteFilter) ([]domain.Note, error)

	GetNote(ctx context.Context, userID, id string) (domain.Note, error)
	CreateNote(ctx context.Context, n domain.Note) error

	// UpdateNote writes every mutable field of n and bumps updated_at.
	UpdateNote(ctx context.Context, n domain.Note) error

	DeleteNote(ctx context.Context, userID, id string) error

	// DetachFolder moves the owner's notes in folderID to no folder and
	// reports how many moved.
	DetachFolder(ctx context.Context, userID, folderID string) (int64, error)
}
