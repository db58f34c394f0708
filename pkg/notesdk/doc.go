/*
Package notesdk provides the wire types of the notes API and a Go client for it.

# Client

A Client keeps the session cookie in a cookie jar, so after Signup or Login
every call is authenticated the same way a browser would be:

	c, err := notesdk.NewClient("http://localhost:5007")
	if err != nil { ... }

	if _, err := c.Login(ctx, notesdk.LoginRequest{Email: "a@example.com", Password: "secret1"}); err != nil { ... }

	work, err := c.CreateFolder(ctx, notesdk.FolderRequest{Name: "Work"})
	note, err := c.CreateNote(ctx, notesdk.CreateNoteRequest{
		Title:    "Standup",
		Content:  "- ship it",
		FolderID: work.ID,
	})

# Partial updates

UpdateNoteRequest and UpdateProfileRequest use Optional fields so that
"absent", "null" and "empty" can be told apart on the wire:

	// Move a note out of its folder, leave everything else alone.
	c.UpdateNote(ctx, id, notesdk.UpdateNoteRequest{FolderID: notesdk.Null[string]()})

# Errors

Non-2xx replies are returned as *APIError carrying the status code and the
server's message. Use IsNotFound, IsBadRequest and IsUnauthorized to branch.
*/
package notesdk
