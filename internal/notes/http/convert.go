package http

import (
	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

func toUser(u domain.User) notesdk.User {
	return notesdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toFolder(f domain.Folder) notesdk.Folder {
	return notesdk.Folder{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Color:       f.Color,
		UserID:      f.UserID,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFolders(in []domain.FolderWithCount) []notesdk.Folder {
	out := make([]notesdk.Folder, 0, len(in))
	for _, f := range in {
		dto := toFolder(f.Folder)
		count := f.NoteCount
		dto.NoteCount = &count
		out = append(out, dto)
	}
	return out
}

func toNote(n domain.Note) notesdk.Note {
	dto := notesdk.Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Priority:  string(n.Priority),
		Color:     n.Color,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.Folder != nil {
		dto.FolderID = &notesdk.FolderRef{ID: n.Folder.ID, Name: n.Folder.Name, Color: n.Folder.Color}
	}
	return dto
}

// toNotes never returns nil so empty lists encode as [].
func toNotes(in []domain.Note) []notesdk.Note {
	out := make([]notesdk.Note, 0, len(in))
	for _, n := range in {
		out = append(out, toNote(n))
	}
	return out
}
