package service

import "errors"

var (
	ErrFolderNotFound           = errors.New("folder not found")
	ErrFolderNameRequired       = errors.New("folder name is required")
	ErrFolderNameTooLong        = errors.New("folder name too long")
	ErrFolderDescriptionTooLong = errors.New("folder description too long")
	ErrFolderNameTaken          = errors.New("folder name already taken")
)

var (
	ErrNoteNotFound        = errors.New("note not found")
	ErrNoteTitleRequired   = errors.New("note title is required")
	ErrNoteContentRequired = errors.New("note content is required")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidFolder       = errors.New("invalid folder")
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBioTooLong         = errors.New("bio too long")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid session")
)
