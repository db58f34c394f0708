package domain

import "time"

// DefaultColor is the accent color given to folders and notes created
// without one.
const DefaultColor = "#00FF9D"

const (
	MaxFolderNameLen        = 100
	MaxFolderDescriptionLen = 500
)

// Folder groups notes. Name is unique per owner.
type Folder struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FolderWithCount is a folder annotated with how many of its owner's notes
// it holds. The count is computed on read.
type FolderWithCount struct {
	Folder
	NoteCount int
}
