package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type notesRepo struct {
	q *gen.Queries
}

func (r *notesRepo) ListNotes(ctx context.Context, userID string, filter domain.NoteFilter) ([]domain.Note, error) {
	var out []domain.Note

	switch filter.Scope {
	case domain.NotesAll:
		rows, err := r.q.ListNotes(ctx, userID)
		if err != nil {
			return nil, err
		}
		out = make([]domain.Note, 0, len(rows))
		for _, row := range rows {
			out = append(out, mapNote(gen.GetNoteRow(row)))
		}

	case domain.NotesUnfoldered:
		rows, err := r.q.ListUnfolderedNotes(ctx, userID)
		if err != nil {
			return nil, err
		}
		out = make([]domain.Note, 0, len(rows))
		for _, row := range rows {
			out = append(out, mapNote(gen.GetNoteRow(row)))
		}

	case domain.NotesInFolder:
		rows, err := r.q.ListNotesInFolder(ctx, gen.ListNotesInFolderParams{
			UserID:   userID,
			FolderID: sql.NullString{String: filter.FolderID, Valid: true},
		})
		if err != nil {
			return nil, err
		}
		out = make([]domain.Note, 0, len(rows))
		for _, row := range rows {
			out = append(out, mapNote(gen.GetNoteRow(row)))
		}

	default:
		return nil, fmt.Errorf("sqlite: unknown note scope %d", filter.Scope)
	}

	return out, nil
}

func (r *notesRepo) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	row, err := r.q.GetNote(ctx, gen.GetNoteParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return mapNote(row), nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	err := r.q.CreateNote(ctx, gen.CreateNoteParams{
		ID:        n.ID,
		UserID:    n.UserID,
		FolderID:  mapStringNull(n.FolderID),
		Title:     n.Title,
		Content:   n.Content,
		Priority:  string(n.Priority),
		Color:     n.Color,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: n.UpdatedAt.UTC(),
	})
	return mapWriteErr(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	return requireRow(r.q.UpdateNote(ctx, gen.UpdateNoteParams{
		FolderID:  mapStringNull(n.FolderID),
		Title:     n.Title,
		Content:   n.Content,
		Priority:  string(n.Priority),
		Color:     n.Color,
		UpdatedAt: now(),
		ID:        n.ID,
		UserID:    n.UserID,
	}))
}

func (r *notesRepo) DeleteNote(ctx context.Context, userID, id string) error {
	return requireRow(r.q.DeleteNote(ctx, gen.DeleteNoteParams{ID: id, UserID: userID}))
}

func (r *notesRepo) DetachFolder(ctx context.Context, userID, folderID string) (int64, error) {
	return r.q.DetachNotesFromFolder(ctx, gen.DetachNotesFromFolderParams{
		UpdatedAt: now(),
		UserID:    userID,
		FolderID:  sql.NullString{String: folderID, Valid: true},
	})
}
