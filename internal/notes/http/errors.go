package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// serviceErrors maps known service errors to a status and the message shown
// to the user.
var serviceErrors = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrFolderNotFound, http.StatusNotFound, "Folder not found"},
	{service.ErrFolderNameRequired, http.StatusBadRequest, "Folder name is required"},
	{service.ErrFolderNameTooLong, http.StatusBadRequest, "Folder name must be at most 100 characters"},
	{service.ErrFolderDescriptionTooLong, http.StatusBadRequest, "Folder description must be at most 500 characters"},
	{service.ErrFolderNameTaken, http.StatusBadRequest, "Folder with this name already exists"},

	{service.ErrNoteNotFound, http.StatusNotFound, "Note not found"},
	{service.ErrNoteTitleRequired, http.StatusBadRequest, "Title is required"},
	{service.ErrNoteContentRequired, http.StatusBadRequest, "Content is required"},
	{service.ErrInvalidPriority, http.StatusBadRequest, "Invalid priority value"},
	{service.ErrInvalidFolder, http.StatusBadRequest, "Invalid folder"},

	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrBioTooLong, http.StatusBadRequest, "Bio must be less than 500 characters"},
	{service.ErrUsernameTaken, http.StatusBadRequest, "Username already exists"},
	{service.ErrEmailTaken, http.StatusBadRequest, "Email already exists"},
	{service.ErrMissingFields, http.StatusBadRequest, "All fields are required"},
	{service.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
	{service.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 6 characters"},
	{service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
}

// writeServiceError answers a failed service call. Unknown errors are
// logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			httpx.WriteError(w, e.status, e.message)
			return
		}
	}
	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteInternalError(w)
}

func writeBadBody(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
}

// callerID returns the session user. The session middleware guarantees it
// on every route that calls this.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok || id == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
		return "", false
	}
	return id, true
}
