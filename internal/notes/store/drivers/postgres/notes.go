package postgres

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
)

type notesRepo struct {
	q querier
}

const noteSelect = `
	SELECT n.id, n.user_id, n.folder_id, n.title, n.content, n.priority, n.color,
	       n.created_at, n.updated_at, f.name, f.color
	FROM notes n
	LEFT JOIN folders f ON f.id = n.folder_id AND f.user_id = n.user_id`

func (r *notesRepo) ListNotes(ctx context.Context, userID string, filter domain.NoteFilter) ([]domain.Note, error) {
	query := noteSelect + ` WHERE n.user_id = $1`
	args := []any{userID}

	switch filter.Scope {
	case domain.NotesAll:
	case domain.NotesUnfoldered:
		query += ` AND n.folder_id IS NULL`
	case domain.NotesInFolder:
		query += ` AND n.folder_id = $2`
		args = append(args, filter.FolderID)
	default:
		return nil, fmt.Errorf("postgres: unknown note scope %d", filter.Scope)
	}
	query += ` ORDER BY n.created_at DESC, n.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notesRepo) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	n, err := scanNote(r.q.QueryRow(ctx, noteSelect+` WHERE n.id = $1 AND n.user_id = $2`, id, userID))
	return n, mapNotFound(err)
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO notes (id, user_id, folder_id, title, content, priority, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		n.ID, n.UserID, n.FolderID, n.Title, n.Content, string(n.Priority), n.Color,
		n.CreatedAt.UTC(), n.UpdatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	return requireRow(r.q.Exec(ctx, `
		UPDATE notes
		SET folder_id = $1, title = $2, content = $3, priority = $4, color = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`,
		n.FolderID, n.Title, n.Content, string(n.Priority), n.Color, now(), n.ID, n.UserID,
	))
}

func (r *notesRepo) DeleteNote(ctx context.Context, userID, id string) error {
	return requireRow(r.q.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *notesRepo) DetachFolder(ctx context.Context, userID, folderID string) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE notes SET folder_id = NULL, updated_at = $1 WHERE user_id = $2 AND folder_id = $3`,
		now(), userID, folderID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
