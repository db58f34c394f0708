package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts exactly the three known values.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

type Note struct {
	ID       string
	UserID   string
	Title    string
	Content  string
	Priority Priority
	Color    string

	// FolderID is nil for an unfoldered note.
	FolderID *string

	// Folder is filled on read when FolderID is set.
	Folder *FolderRef

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FolderRef is the part of a folder shown alongside a note.
type FolderRef struct {
	ID    string
	Name  string
	Color string
}

// NoteScope selects which of an owner's notes a listing returns.
type NoteScope int

const (
	NotesAll NoteScope = iota
	NotesUnfoldered
	NotesInFolder
)

type NoteFilter struct {
	Scope    NoteScope
	FolderID string // only for NotesInFolder
}
