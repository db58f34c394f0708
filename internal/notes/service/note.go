package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/mdx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// NoteInput creates a note. An empty Priority means medium, an empty Color
// the default color. FolderID "" or "null" creates an unfoldered note.
type NoteInput struct {
	Title    string
	Content  string
	Priority string
	Color    string
	FolderID string
}

// NoteUpdate changes only the fields that are set. Title and Content are
// written as given, even when empty. Priority and Color are ignored when
// empty. FolderID set to null, "" or "null" unfiles the note.
type NoteUpdate struct {
	Title    notesdk.Optional[string]
	Content  notesdk.Optional[string]
	Priority notesdk.Optional[string]
	Color    notesdk.Optional[string]
	FolderID notesdk.Optional[string]
}

type NoteService struct {
	Store    store.Store
	Markdown *mdx.Renderer
}

func (s *NoteService) ListNotes(ctx context.Context, ownerID string, filter domain.NoteFilter) ([]domain.Note, error) {
	notes, err := s.Store.Notes().ListNotes(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) GetNote(ctx context.Context, ownerID, noteID string) (domain.Note, error) {
	note, err := s.Store.Notes().GetNote(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Note{}, ErrNoteNotFound
		}
		return domain.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (s *NoteService) CreateNote(ctx context.Context, ownerID string, in NoteInput) (domain.Note, error) {
	if in.Title == "" {
		return domain.Note{}, ErrNoteTitleRequired
	}
	if in.Content == "" {
		return domain.Note{}, ErrNoteContentRequired
	}

	priority := domain.PriorityMedium
	if in.Priority != "" {
		p, ok := domain.ParsePriority(in.Priority)
		if !ok {
			return domain.Note{}, ErrInvalidPriority
		}
		priority = p
	}

	folderID, err := s.resolveFolder(ctx, ownerID, in.FolderID)
	if err != nil {
		return domain.Note{}, err
	}

	color := in.Color
	if color == "" {
		color = domain.DefaultColor
	}

	now := time.Now().UTC()
	note := domain.Note{
		ID:        idx.NewAt(now).String(),
		UserID:    ownerID,
		Title:     in.Title,
		Content:   in.Content,
		Priority:  priority,
		Color:     color,
		FolderID:  folderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Notes().CreateNote(ctx, note); err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}

	slogx.FromContext(ctx).Info("note created", slog.String("note_id", note.ID))
	return s.GetNote(ctx, ownerID, note.ID)
}

func (s *NoteService) UpdateNote(ctx context.Context, ownerID, noteID string, up NoteUpdate) (domain.Note, error) {
	note, err := s.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return domain.Note{}, err
	}

	if p, ok := up.Priority.Get(); ok && p != "" {
		parsed, valid := domain.ParsePriority(p)
		if !valid {
			return domain.Note{}, ErrInvalidPriority
		}
		note.Priority = parsed
	}

	if up.FolderID.Set {
		raw, _ := up.FolderID.Get()
		folderID, err := s.resolveFolder(ctx, ownerID, raw)
		if err != nil {
			return domain.Note{}, err
		}
		note.FolderID = folderID
	}

	if up.Title.Set {
		note.Title, _ = up.Title.Get()
	}
	if up.Content.Set {
		note.Content, _ = up.Content.Get()
	}
	if c, ok := up.Color.Get(); ok && c != "" {
		note.Color = c
	}

	if err := s.Store.Notes().UpdateNote(ctx, note); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Note{}, ErrNoteNotFound
		}
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	return s.GetNote(ctx, ownerID, noteID)
}

func (s *NoteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := s.Store.Notes().DeleteNote(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	slogx.FromContext(ctx).Info("note deleted", slog.String("note_id", noteID))
	return nil
}

// RenderNote returns the note's content as HTML.
func (s *NoteService) RenderNote(ctx context.Context, ownerID, noteID string) (string, error) {
	note, err := s.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return "", err
	}

	md := s.Markdown
	if md == nil {
		md = mdx.New()
	}
	html, err := md.Render(note.Content)
	if err != nil {
		return "", fmt.Errorf("render note: %w", err)
	}
	return html, nil
}

// resolveFolder turns a requested folder id into the stored reference.
// "" and "null" mean no folder; anything else must be one of the owner's.
func (s *NoteService) resolveFolder(ctx context.Context, ownerID, raw string) (*string, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}

	folder, err := s.Store.Folders().GetFolder(ctx, ownerID, raw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidFolder
		}
		return nil, fmt.Errorf("lookup folder: %w", err)
	}
	return &folder.ID, nil
}

// ParseNoteFilter maps the folderId query value to a listing filter.
func ParseNoteFilter(folderID string) domain.NoteFilter {
	switch folderID {
	case "":
		return domain.NoteFilter{Scope: domain.NotesAll}
	case "null", notesdk.FilterUnfoldered:
		return domain.NoteFilter{Scope: domain.NotesUnfoldered}
	}
	return domain.NoteFilter{Scope: domain.NotesInFolder, FolderID: folderID}
}
