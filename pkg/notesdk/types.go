package notesdk

import "time"

// ============================================================================
// Common
// ============================================================================

// MessageResponse is returned by deletes and by every error.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Users
// ============================================================================

// User is a profile as returned by the API. The password hash never leaves
// the server.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserResponse wraps a user for the auth and profile endpoints.
type UserResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/profile/update. Only fields
// that are set change; an empty username or email is ignored, an empty bio
// clears it.
type UpdateProfileRequest struct {
	Username Optional[string] `json:"username,omitzero"`
	Email    Optional[string] `json:"email,omitzero"`
	Bio      Optional[string] `json:"bio,omitzero"`
}

// ============================================================================
// Folders
// ============================================================================

// Folder as returned by the API. NoteCount is only filled in lists.
type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	UserID      string    `json:"userId"`
	NoteCount   *int      `json:"noteCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FolderDetail is the reply of GET /api/folders/{id}.
type FolderDetail struct {
	Folder Folder `json:"folder"`
	Notes  []Note `json:"notes"`
}

// FolderRequest creates or replaces a folder. Empty description and color
// fall back to their defaults.
type FolderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ============================================================================
// Notes
// ============================================================================

// FolderRef is the expanded folder reference embedded in a note.
type FolderRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Note as returned by the API. FolderID is nil for unfoldered notes.
type Note struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Priority  string     `json:"priority"`
	Color     string     `json:"color"`
	FolderID  *FolderRef `json:"folderId"`
	UserID    string     `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NoteHTML is the reply of GET /api/notes/{id}/html.
type NoteHTML struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

// Priorities accepted by the API.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// FilterUnfoldered selects notes without a folder in ListNotes.
const FilterUnfoldered = "none"

// CreateNoteRequest is the body of POST /api/notes. An empty FolderID, or
// the string "null", creates an unfoldered note.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority,omitempty"`
	Color    string `json:"color,omitempty"`
	FolderID string `json:"folderId,omitempty"`
}

// UpdateNoteRequest is the body of PUT /api/notes/{id}.
//
// Title and Content overwrite whenever set, even with "". Priority and Color
// change only when set to a non-empty value. FolderID moves the note when
// set; Null (or "" or "null") takes it out of its folder.
type UpdateNoteRequest struct {
	Title    Optional[string] `json:"title,omitzero"`
	Content  Optional[string] `json:"content,omitzero"`
	Priority Optional[string] `json:"priority,omitzero"`
	Color    Optional[string] `json:"color,omitzero"`
	FolderID Optional[string] `json:"folderId,omitzero"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency in /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
