package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListNotes lists the caller's notes. folder is "" for all notes,
// FilterUnfoldered for notes without a folder, or a folder id.
func (c *Client) ListNotes(ctx context.Context, folder string) ([]Note, error) {
	path := "/api/notes"
	if folder != "" {
		path += "?" + url.Values{"folderId": {folder}}.Encode()
	}

	var out []Note
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNoteHTML returns the note's content rendered from markdown.
func (c *Client) GetNoteHTML(ctx context.Context, id string) (*NoteHTML, error) {
	var out NoteHTML
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id)+"/html", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, req UpdateNoteRequest) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil, http.StatusOK)
}
